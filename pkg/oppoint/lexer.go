package oppoint

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// listingLexer tokenizes operating-point listings as printed by ngspice's
// "print all" or "op" commands.
var listingLexer = lexer.MustSimple([]lexer.SimpleRule{
	// SPICE comment lines start with '*'
	{Name: "Comment", Pattern: `\*[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z_#][A-Za-z0-9_#.:$]*`},

	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Equals", Pattern: `=`},
})
