package oppoint

// listing is the root of a parsed operating-point listing.
type listing struct {
	Entries []*entry `parser:"@@*"`
}

// entry is one "name = value" line. The name is either a probe such as
// v(out) or a bare node name.
type entry struct {
	Probe *probe  `parser:"( @@"`
	Node  string  `parser:"| @Ident )"`
	Value float64 `parser:"\"=\" @Number"`
}

type probe struct {
	Kind string `parser:"@Ident \"(\""`
	Name string `parser:"@Ident \")\""`
}
