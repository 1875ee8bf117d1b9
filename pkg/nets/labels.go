package nets

import (
	"fmt"
	"sort"

	"github.com/OpenTraceLab/circe/pkg/grid"
)

// DefaultLabelPrefix starts the name given to labels placed without one.
const DefaultLabelPrefix = "net"

// LabelID identifies a net label inside a Labels collection.
type LabelID uint64

// Label names the net found at its anchor point.
type Label struct {
	ID           LabelID
	Name         string
	Anchor       grid.Point
	UserAssigned bool // false while the name is the generated default
}

// Bounds returns the label's interactable region.
func (l Label) Bounds() grid.Box {
	return grid.Box{Min: l.Anchor, Max: l.Anchor}
}

// AsAnchor converts the label into a naming anchor.
func (l Label) AsAnchor() Anchor {
	pr := PriorityDefault
	if l.UserAssigned {
		pr = PriorityUser
	}
	return Anchor{Point: l.Anchor, Name: l.Name, Priority: pr}
}

// Labels owns every net label of a schematic.
type Labels struct {
	items  map[LabelID]*Label
	nextID LabelID
	seq    int
}

// NewLabels creates an empty collection.
func NewLabels() *Labels {
	return &Labels{items: make(map[LabelID]*Label)}
}

// New places a label at p. An empty name gets a generated default that no
// live label holds, and the label is not marked as user-assigned.
func (ls *Labels) New(name string, p grid.Point) LabelID {
	user := name != ""
	if !user {
		name = ls.nextDefaultName()
	}
	return ls.Insert(Label{Name: name, Anchor: p, UserAssigned: user})
}

func (ls *Labels) nextDefaultName() string {
	taken := make(map[string]bool, len(ls.items))
	for _, l := range ls.items {
		taken[l.Name] = true
	}
	for {
		ls.seq++
		name := fmt.Sprintf("%s%d", DefaultLabelPrefix, ls.seq)
		if !taken[name] {
			return name
		}
	}
}

// Insert stores a copy of l under a fresh ID and returns it.
func (ls *Labels) Insert(l Label) LabelID {
	ls.nextID++
	l.ID = ls.nextID
	ls.items[l.ID] = &l
	return l.ID
}

// Delete removes the label.
func (ls *Labels) Delete(id LabelID) bool {
	if _, ok := ls.items[id]; !ok {
		return false
	}
	delete(ls.items, id)
	return true
}

// Get returns a copy of the label.
func (ls *Labels) Get(id LabelID) (Label, bool) {
	l, ok := ls.items[id]
	if !ok {
		return Label{}, false
	}
	return *l, true
}

// Rename sets a user-chosen name. An empty name is rejected.
func (ls *Labels) Rename(id LabelID, name string) bool {
	l, ok := ls.items[id]
	if !ok || name == "" {
		return false
	}
	l.Name = name
	l.UserAssigned = true
	return true
}

// Transform moves the label's anchor.
func (ls *Labels) Transform(id LabelID, t grid.Transform) bool {
	l, ok := ls.items[id]
	if !ok {
		return false
	}
	l.Anchor = t.Apply(l.Anchor)
	return true
}

// Len returns the number of labels.
func (ls *Labels) Len() int {
	return len(ls.items)
}

// All returns copies of every label ordered by ID.
func (ls *Labels) All() []Label {
	out := make([]Label, 0, len(ls.items))
	for _, l := range ls.items {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Anchors returns one naming anchor per label.
func (ls *Labels) Anchors() []Anchor {
	all := ls.All()
	out := make([]Anchor, len(all))
	for i, l := range all {
		out[i] = l.AsAnchor()
	}
	return out
}

// IntersectingBox returns the labels whose bounds touch box.
func (ls *Labels) IntersectingBox(box grid.Box) []LabelID {
	var ids []LabelID
	for _, l := range ls.All() {
		if l.Bounds().Intersects(box) {
			ids = append(ids, l.ID)
		}
	}
	return ids
}

// Selectable works like Graph.Selectable over labels.
func (ls *Labels) Selectable(p grid.Point, skip int, count *int) (LabelID, bool) {
	for _, l := range ls.All() {
		if !l.Bounds().Contains(p) {
			continue
		}
		if *count >= skip {
			return l.ID, true
		}
		*count++
	}
	return 0, false
}

// BoundingBox returns the box around every anchor.
func (ls *Labels) BoundingBox() grid.Box {
	bb := grid.EmptyBox()
	for _, l := range ls.items {
		bb = bb.Union(l.Bounds())
	}
	return bb
}
