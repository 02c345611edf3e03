package output

import "binclock/internal/domain"

// Renderer draws one indicator grid. A renderer called twice with the same
// face must produce the same output.
type Renderer interface {
	Render(face domain.Face) error
}
