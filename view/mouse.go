package view

import "github.com/go-gl/mathgl/mgl32"

// Mouse tracks the cursor in world space and the state of a drag
type Mouse struct {
	Position  mgl32.Vec2
	Dragging  bool
	DragStart mgl32.Vec2
}

// Move sets the cursor position
func (m *Mouse) Move(p mgl32.Vec2) {
	m.Position = p
}

// Press starts a drag at the current position
func (m *Mouse) Press() {
	m.Dragging = true
	m.DragStart = m.Position
}

// Release ends any drag in progress
func (m *Mouse) Release() {
	m.Dragging = false
}

// Drag returns the distance moved since the drag started, or zero if there
// is no drag in progress
func (m *Mouse) Drag() mgl32.Vec2 {
	if !m.Dragging {
		return mgl32.Vec2{}
	}
	return m.Position.Sub(m.DragStart)
}
