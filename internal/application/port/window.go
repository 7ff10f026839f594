package port

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// WindowHandle identifies a host window owned by a floating arrangement.
type WindowHandle string

// HostWindowRequest describes a window to create for a floating arrangement.
type HostWindowRequest struct {
	ArrangementID string
	// Bounds is the arrangement's screen rectangle. Providers adjust it for
	// their own window decorations.
	Bounds entity.Rect
}

// HostWindowProvider creates and destroys the top-level windows hosting
// floating arrangements. Implemented by the UI toolkit adapter.
type HostWindowProvider interface {
	// CreateHostWindow creates, sizes, positions and shows a window.
	CreateHostWindow(ctx context.Context, req HostWindowRequest) (WindowHandle, error)
	// DestroyHostWindow closes and releases a window.
	DestroyHostWindow(ctx context.Context, handle WindowHandle) error
}
