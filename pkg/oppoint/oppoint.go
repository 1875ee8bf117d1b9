// Package oppoint reads the DC operating point reported by a SPICE
// simulator so it can be shown back on the schematic.
package oppoint

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// GroundNode is always at 0 V even when the simulator omits it.
const GroundNode = "0"

// ngspice reports source currents as "<source>#branch".
const branchSuffix = "#branch"

var listingParser = participle.MustBuild[listing](
	participle.Lexer(listingLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)

// Results holds node voltages and branch currents. Names are matched
// case-insensitively, as SPICE does.
type Results struct {
	voltages map[string]float64
	currents map[string]float64
}

// NewResults returns an empty result set.
func NewResults() *Results {
	return &Results{
		voltages: make(map[string]float64),
		currents: make(map[string]float64),
	}
}

// SetVoltage records the voltage of a node.
func (r *Results) SetVoltage(node string, v float64) {
	r.voltages[strings.ToLower(node)] = v
}

// SetCurrent records the current through a branch.
func (r *Results) SetCurrent(branch string, i float64) {
	r.currents[strings.ToLower(branch)] = i
}

// Voltage returns the voltage of node.
func (r *Results) Voltage(node string) (float64, bool) {
	if node == GroundNode {
		return 0, true
	}
	v, ok := r.voltages[strings.ToLower(node)]
	return v, ok
}

// Current returns the current through a branch, usually a voltage source.
func (r *Results) Current(branch string) (float64, bool) {
	i, ok := r.currents[strings.ToLower(branch)]
	return i, ok
}

// Nodes returns the node names with a voltage, sorted.
func (r *Results) Nodes() []string {
	out := make([]string, 0, len(r.voltages))
	for n := range r.voltages {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of recorded values.
func (r *Results) Len() int {
	return len(r.voltages) + len(r.currents)
}

// Parse reads an operating-point listing from r.
func Parse(r io.Reader) (*Results, error) {
	l, err := listingParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("oppoint: parse error: %w", err)
	}
	return build(l)
}

// ParseString reads an operating-point listing from a string.
func ParseString(input string) (*Results, error) {
	l, err := listingParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("oppoint: parse error: %w", err)
	}
	return build(l)
}

// ParseFile reads an operating-point listing from a file.
func ParseFile(filename string) (*Results, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("oppoint: failed to open file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

func build(l *listing) (*Results, error) {
	res := NewResults()
	for _, e := range l.Entries {
		if e.Probe == nil {
			if branch, ok := strings.CutSuffix(strings.ToLower(e.Node), branchSuffix); ok {
				res.SetCurrent(branch, e.Value)
			} else {
				res.SetVoltage(e.Node, e.Value)
			}
			continue
		}
		switch strings.ToLower(e.Probe.Kind) {
		case "v":
			res.SetVoltage(e.Probe.Name, e.Value)
		case "i":
			res.SetCurrent(e.Probe.Name, e.Value)
		default:
			return nil, fmt.Errorf("oppoint: unknown probe %s(%s)", e.Probe.Kind, e.Probe.Name)
		}
	}
	return res, nil
}
