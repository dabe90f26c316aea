package editor

import "sync"

// MouseEventKind distinguishes mouse events.
type MouseEventKind int

const (
	MouseMove MouseEventKind = iota
	MouseDown
	MouseUp
)

// MouseEvent is a primary-button mouse event in window coordinates.
type MouseEvent struct {
	Kind MouseEventKind
	X, Y int
}

// Pointer holds the last cursor position and whether the primary button is
// held for drawing. It is safe for concurrent use.
type Pointer struct {
	mu      sync.Mutex
	armed   bool
	drawing bool
	x, y    int
}

// HandleEvent records ev. The cursor is always updated; button changes
// only count while the pointer is armed for drawing.
func (p *Pointer) HandleEvent(ev MouseEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.armed {
		switch ev.Kind {
		case MouseDown:
			p.drawing = true
		case MouseUp:
			p.drawing = false
		}
	}
	p.x, p.y = ev.X, ev.Y
}

// SetArmed enables or disables drawing. Disarming releases the button.
func (p *Pointer) SetArmed(armed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.armed = armed
	if !armed {
		p.drawing = false
	}
}

// State returns the cursor position and whether drawing is active.
func (p *Pointer) State() (x, y int, drawing bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.x, p.y, p.drawing
}
