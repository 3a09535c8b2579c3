package region

import "testing"

func TestMachine_NormalizesReversedDrag(t *testing.T) {
	m := NewMachine()
	m.Press(100, 100)
	m.Move(50, 40)
	m.Release(10, 10)

	rect, ok := m.Result()
	if !ok {
		t.Fatal("Expected completed selection")
	}
	want := Rect{X1: 10, Y1: 10, X2: 100, Y2: 100}
	if rect != want {
		t.Errorf("Result = %+v, want %+v", rect, want)
	}
}

func TestMachine_ForwardDrag(t *testing.T) {
	m := NewMachine()
	m.Press(10, 20)
	m.Release(110, 220)

	rect, ok := m.Result()
	if !ok {
		t.Fatal("Expected completed selection")
	}
	want := Rect{X1: 10, Y1: 20, X2: 110, Y2: 220}
	if rect != want {
		t.Errorf("Result = %+v, want %+v", rect, want)
	}
	region := rect.ToRegion()
	if region.X != 10 || region.Y != 20 || region.Width != 100 || region.Height != 200 {
		t.Errorf("ToRegion = %+v", region)
	}
}

func TestMachine_CancelEmitsNoRectangle(t *testing.T) {
	m := NewMachine()
	m.Press(5, 5)
	m.Move(50, 50)
	m.Cancel()

	if m.State() != StateCancelled {
		t.Fatalf("State = %v, want StateCancelled", m.State())
	}
	if _, ok := m.Result(); ok {
		t.Error("Cancelled machine must not emit a rectangle")
	}
}

func TestMachine_TerminalStatesAreFinal(t *testing.T) {
	m := NewMachine()
	m.Press(0, 0)
	m.Release(10, 10)
	// Late events must not disturb the completed result.
	m.Press(500, 500)
	m.Move(600, 600)
	m.Cancel()

	rect, ok := m.Result()
	if !ok {
		t.Fatal("Completed selection lost after late events")
	}
	if rect != (Rect{X1: 0, Y1: 0, X2: 10, Y2: 10}) {
		t.Errorf("Result changed by late events: %+v", rect)
	}

	c := NewMachine()
	c.Press(0, 0)
	c.Cancel()
	c.Release(10, 10)
	if c.State() != StateCancelled {
		t.Error("Release after cancel must be ignored")
	}
}

func TestMachine_MoveBeforePressIgnored(t *testing.T) {
	m := NewMachine()
	m.Move(5, 5)
	if m.State() != StateIdle {
		t.Errorf("Move before press changed state to %v", m.State())
	}
}

func TestMachine_LiveTracksPointer(t *testing.T) {
	m := NewMachine()
	m.Press(10, 10)
	m.Move(4, 30)
	if live := m.Live(); live != (Rect{X1: 4, Y1: 10, X2: 10, Y2: 30}) {
		t.Errorf("Live = %+v", live)
	}
}
