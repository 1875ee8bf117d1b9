package circuit

import (
	"testing"

	"github.com/OpenTraceLab/circe/pkg/device"
	"github.com/OpenTraceLab/circe/pkg/grid"
)

func never(grid.Point) bool  { return false }
func always(grid.Point) bool { return true }

func TestStepIdle(t *testing.T) {
	cur := grid.Pt(1, 1)

	s, cmd := Step(Idle{}, BeginWire{}, cur, never)
	if w, ok := s.(Wiring); !ok || w.Active {
		t.Errorf("BeginWire: got %#v, want inactive Wiring", s)
	}
	if cmd != nil {
		t.Errorf("BeginWire: unexpected command %#v", cmd)
	}

	s, cmd = Step(Idle{}, PlacePoint{}, cur, never)
	if _, ok := s.(Idle); !ok || cmd != nil {
		t.Errorf("PlacePoint in Idle should do nothing, got %#v %#v", s, cmd)
	}

	s, cmd = Step(Idle{}, PlaceDevice{Class: device.PMOS}, cur, never)
	if nd, ok := cmd.(NewDevice); !ok || nd.Class != device.PMOS {
		t.Errorf("PlaceDevice: command %#v", cmd)
	}
	if _, ok := s.(Idle); !ok {
		t.Errorf("PlaceDevice should stay Idle, got %#v", s)
	}

	if _, cmd = Step(Idle{}, PlaceLabel{}, cur, never); cmd != (NewLabel{}) {
		t.Errorf("PlaceLabel: command %#v", cmd)
	}

	if s, _ = Step(nil, Escape{}, cur, never); s != (Idle{}) {
		t.Errorf("nil state should behave as Idle")
	}
}

func TestStepWiring(t *testing.T) {
	anchor := grid.Pt(0, 0)
	active := startWire(anchor)

	t.Run("first click anchors", func(t *testing.T) {
		s, cmd := Step(Wiring{}, PlacePoint{}, grid.Pt(2, 3), never)
		w, ok := s.(Wiring)
		if !ok || !w.Active || w.Anchor != grid.Pt(2, 3) {
			t.Fatalf("got %#v", s)
		}
		if w.Preview == nil || !w.Preview.IsEmpty() {
			t.Errorf("preview should start empty")
		}
		if cmd != nil {
			t.Errorf("unexpected command %#v", cmd)
		}
	})

	t.Run("pointer routes preview", func(t *testing.T) {
		s, _ := Step(active, PointerMoved{X: 2, Y: 1}, grid.Pt(2, 1), never)
		w := s.(Wiring)
		if got := w.Preview.EdgeCount(); got != 3 {
			t.Errorf("preview edges = %d, want 3", got)
		}
		if active.Preview.EdgeCount() != 0 {
			t.Errorf("Step must not modify the input state")
		}
	})

	t.Run("click on anchor ends path", func(t *testing.T) {
		s, cmd := Step(active, PlacePoint{}, anchor, never)
		if w := s.(Wiring); w.Active {
			t.Errorf("expected inactive wiring")
		}
		if cmd != nil {
			t.Errorf("nothing to commit, got %#v", cmd)
		}
	})

	t.Run("click on free point continues", func(t *testing.T) {
		s, cmd := Step(active, PlacePoint{}, grid.Pt(0, 4), never)
		w := s.(Wiring)
		if !w.Active || w.Anchor != grid.Pt(0, 4) {
			t.Errorf("got %#v", w)
		}
		cw, ok := cmd.(CommitWire)
		if !ok || cw.Path.EdgeCount() != 4 {
			t.Errorf("expected 4-segment commit, got %#v", cmd)
		}
	})

	t.Run("click on occupied point finishes", func(t *testing.T) {
		s, cmd := Step(active, PlacePoint{}, grid.Pt(0, 4), always)
		if w := s.(Wiring); w.Active {
			t.Errorf("expected inactive wiring")
		}
		if _, ok := cmd.(CommitWire); !ok {
			t.Errorf("expected CommitWire, got %#v", cmd)
		}
	})

	t.Run("cancel and escape", func(t *testing.T) {
		if s, cmd := Step(active, Cancel{}, anchor, never); s.(Wiring).Active || cmd != nil {
			t.Errorf("Cancel: %#v %#v", s, cmd)
		}
		if s, _ := Step(active, Escape{}, anchor, never); s != (Idle{}) {
			t.Errorf("Escape: %#v", s)
		}
	})

	t.Run("devices ignored while wiring", func(t *testing.T) {
		s, cmd := Step(active, PlaceDevice{Class: device.Resistor}, anchor, never)
		if cmd != nil || !s.(Wiring).Active {
			t.Errorf("got %#v %#v", s, cmd)
		}
	})
}

func TestStepAnyState(t *testing.T) {
	els := []Element{EdgeElement{ID: 3}}
	for _, s := range []State{Idle{}, Wiring{}, startWire(grid.Pt(1, 1))} {
		next, cmd := Step(s, Delete{Elements: els}, grid.Pt(0, 0), never)
		if de, ok := cmd.(DeleteElements); !ok || len(de.Elements) != 1 {
			t.Errorf("%T: Delete command %#v", s, cmd)
		}
		if _, same := next.(Idle); same != isIdle(s) {
			t.Errorf("%T: Delete must not change state", s)
		}
	}
}

func isIdle(s State) bool {
	_, ok := s.(Idle)
	return ok
}
