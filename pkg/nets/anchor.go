package nets

import (
	"sort"

	"github.com/OpenTraceLab/circe/pkg/grid"
)

// Priority ranks the sources of a net name. When several anchors land on one
// net the highest priority wins.
type Priority int

const (
	// PriorityDefault is a label carrying a generated default name.
	PriorityDefault Priority = iota
	// PriorityUser is a label whose name was typed by the user.
	PriorityUser
	// PriorityGround is a ground port; it always names its net "0".
	PriorityGround
)

// Anchor binds a name to a grid point for name inference.
type Anchor struct {
	Point    grid.Point
	Name     string
	Priority Priority
}

// sortAnchors orders anchors best first: priority descending, then anchor
// point in grid order, then name.
func sortAnchors(as []Anchor) {
	sort.Slice(as, func(i, j int) bool {
		if as[i].Priority != as[j].Priority {
			return as[i].Priority > as[j].Priority
		}
		if as[i].Point != as[j].Point {
			return as[i].Point.Less(as[j].Point)
		}
		return as[i].Name < as[j].Name
	})
}
