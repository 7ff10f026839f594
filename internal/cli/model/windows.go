package model

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// TerminalWindows hosts floating arrangements as framed boxes drawn over
// the main surface. It only keeps the bookkeeping; drawing happens in View.
type TerminalWindows struct {
	next    int
	windows map[port.WindowHandle]string
}

var _ port.HostWindowProvider = (*TerminalWindows)(nil)

// NewTerminalWindows creates an empty window table.
func NewTerminalWindows() *TerminalWindows {
	return &TerminalWindows{windows: make(map[port.WindowHandle]string)}
}

// CreateHostWindow implements port.HostWindowProvider.
func (w *TerminalWindows) CreateHostWindow(ctx context.Context, req port.HostWindowRequest) (port.WindowHandle, error) {
	if req.ArrangementID == "" {
		return "", fmt.Errorf("%w: window request without arrangement", entity.ErrInvalidArgument)
	}
	w.next++
	handle := port.WindowHandle(fmt.Sprintf("tw-%d", w.next))
	w.windows[handle] = req.ArrangementID

	logging.FromContext(ctx).Debug().
		Str("handle", string(handle)).
		Str("arrangement_id", req.ArrangementID).
		Int("width", req.Bounds.W).
		Int("height", req.Bounds.H).
		Msg("terminal window created")
	return handle, nil
}

// DestroyHostWindow implements port.HostWindowProvider.
func (w *TerminalWindows) DestroyHostWindow(ctx context.Context, handle port.WindowHandle) error {
	if _, ok := w.windows[handle]; !ok {
		return fmt.Errorf("%w: unknown window %s", entity.ErrState, handle)
	}
	delete(w.windows, handle)
	logging.FromContext(ctx).Debug().Str("handle", string(handle)).Msg("terminal window destroyed")
	return nil
}

// Len returns the number of open windows.
func (w *TerminalWindows) Len() int { return len(w.windows) }

// Handles returns the open handles in creation order.
func (w *TerminalWindows) Handles() []port.WindowHandle {
	handles := make([]port.WindowHandle, 0, len(w.windows))
	for h := range w.windows {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool {
		if len(handles[i]) != len(handles[j]) {
			return len(handles[i]) < len(handles[j])
		}
		return handles[i] < handles[j]
	})
	return handles
}
