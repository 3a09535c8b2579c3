// Package region turns pointer-drag input into a normalized screen rectangle.
package region

import "screen-qna/screenshot"

type State int

const (
	StateIdle State = iota
	StateDragging
	StateCompleted
	StateCancelled
)

// Rect is a normalized selection in absolute screen pixels: X1<=X2, Y1<=Y2.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// ToRegion converts to the capture package's x/y/width/height form.
func (r Rect) ToRegion() screenshot.Region {
	return screenshot.Region{X: r.X1, Y: r.Y1, Width: r.X2 - r.X1, Height: r.Y2 - r.Y1}
}

// Machine is the drag state machine: Idle -> Dragging -> Completed|Cancelled.
// Exactly one terminal state is reached per run; events arriving after a
// terminal state are ignored.
type Machine struct {
	state          State
	startX, startY int
	curX, curY     int
}

func NewMachine() *Machine {
	return &Machine{state: StateIdle}
}

func (m *Machine) State() State { return m.state }

// Press records the drag origin and starts the live rectangle.
func (m *Machine) Press(x, y int) {
	if m.state != StateIdle {
		return
	}
	m.startX, m.startY = x, y
	m.curX, m.curY = x, y
	m.state = StateDragging
}

// Move updates the live rectangle to span origin..pointer.
func (m *Machine) Move(x, y int) {
	if m.state != StateDragging {
		return
	}
	m.curX, m.curY = x, y
}

// Release completes the selection at the given pointer position.
func (m *Machine) Release(x, y int) {
	if m.state != StateDragging {
		return
	}
	m.curX, m.curY = x, y
	m.state = StateCompleted
}

// Cancel aborts the selection; no rectangle is emitted.
func (m *Machine) Cancel() {
	if m.state == StateCompleted || m.state == StateCancelled {
		return
	}
	m.state = StateCancelled
}

// Live returns the current normalized span, valid while dragging and after
// completion.
func (m *Machine) Live() Rect {
	return Rect{
		X1: min(m.startX, m.curX),
		Y1: min(m.startY, m.curY),
		X2: max(m.startX, m.curX),
		Y2: max(m.startY, m.curY),
	}
}

// Result returns the selected rectangle and whether the machine completed.
func (m *Machine) Result() (Rect, bool) {
	if m.state != StateCompleted {
		return Rect{}, false
	}
	return m.Live(), true
}
