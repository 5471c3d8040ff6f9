package glcore

import "github.com/tinyrange/minigl/internal/glmath"

// MatrixMode selects which of the two matrix stacks subsequent stack
// operations act on. The numeric values are the index into Context's
// matrix-stacks array and must stay stable.
type MatrixMode uint32

const (
	ModelView MatrixMode = 0
	Projection MatrixMode = 1
)

const numMatrixModes = 2

// matrixStack is a non-empty stack of matrices; the base element is always
// present.
type matrixStack struct {
	frames []glmath.Mat4
}

func newMatrixStack() matrixStack {
	return matrixStack{frames: []glmath.Mat4{glmath.Identity()}}
}

// top returns the current top-of-stack matrix.
func (s *matrixStack) top() glmath.Mat4 {
	return s.frames[len(s.frames)-1]
}

// setTop replaces the current top-of-stack matrix.
func (s *matrixStack) setTop(m glmath.Mat4) {
	s.frames[len(s.frames)-1] = m
}

// mulTop right-multiplies the top-of-stack matrix by m: top <- top * m.
func (s *matrixStack) mulTop(m glmath.Mat4) {
	glmath.MulAssign(&s.frames[len(s.frames)-1], m)
}

// push duplicates the top of the stack.
func (s *matrixStack) push() {
	s.frames = append(s.frames, s.top())
}

// pop removes the top of the stack if there is more than one frame;
// otherwise it is a no-op, matching the legacy driver's leniency rather
// than treating it as a stack underflow.
func (s *matrixStack) pop() {
	if len(s.frames) > 1 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}
