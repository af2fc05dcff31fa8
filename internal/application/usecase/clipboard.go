package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/shadow"
	"github.com/bnema/shade/internal/logging"
)

// ClipboardUseCase errors.
var (
	ErrClipboardEmpty      = errors.New("clipboard is empty")
	ErrInternalWidget      = errors.New("internal widgets cannot be cut or copied")
	ErrToplevelNeedsNoSlot = errors.New("toplevel widgets cannot be pasted into a container")
	ErrPasteNeedsParent    = errors.New("only toplevel widgets can be pasted without a parent")
	ErrDuplicateFailed     = errors.New("duplicate failed")
)

// ClipboardUseCase keeps a detached copy of a widget subtree. Content that
// comes from a cut is an exact copy, signal handlers included, and pastes
// exactly; copied content starts without handlers.
type ClipboardUseCase struct {
	session    *shadow.Session
	exactOnCut bool

	mu      sync.Mutex
	content *shadow.Node
	exact   bool
}

// NewClipboardUseCase creates a new ClipboardUseCase. exactOnCut controls
// whether cut content keeps its signal handlers.
func NewClipboardUseCase(session *shadow.Session, exactOnCut bool) *ClipboardUseCase {
	return &ClipboardUseCase{
		session:    session,
		exactOnCut: exactOnCut,
	}
}

// ClipboardInput names the widget to cut or copy.
type ClipboardInput struct {
	Project port.Project
	Widget  string
}

// PasteInput names the container receiving the clipboard content. An empty
// Parent pastes a toplevel.
type PasteInput struct {
	Project port.Project
	Parent  string
}

// Content returns the node held by the clipboard, or nil.
func (uc *ClipboardUseCase) Content() *shadow.Node {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.content
}

// Copy stores a plain duplicate of the widget.
func (uc *ClipboardUseCase) Copy(ctx context.Context, input ClipboardInput) (*shadow.Node, error) {
	n, err := uc.lookup(input)
	if err != nil {
		return nil, err
	}
	dup := uc.session.Duplicate(n, false)
	if dup == nil {
		return nil, ErrDuplicateFailed
	}
	uc.store(dup, false)

	logging.FromContext(logging.WithNode(ctx, n.Name(), n.Class().Name)).
		Debug().Msg("widget copied")
	return dup, nil
}

// Cut stores a duplicate of the widget and removes the original from the
// project. A container that uses placeholders gets one in the freed slot.
func (uc *ClipboardUseCase) Cut(ctx context.Context, input ClipboardInput) (*shadow.Node, error) {
	n, err := uc.lookup(input)
	if err != nil {
		return nil, err
	}
	dup := uc.session.Duplicate(n, uc.exactOnCut)
	if dup == nil {
		return nil, ErrDuplicateFailed
	}

	name := n.Name()
	if parent := n.Parent(); parent != nil && parent.Object() != nil &&
		parent.Adaptor().HasChild(parent.Object(), n.Object()) {
		if shadow.PlaceholderRelation(parent, n) {
			uc.session.ReplaceChild(parent, n.Object(), uc.session.Toolkit().NewPlaceholder())
		} else {
			uc.session.RemoveChild(parent, n)
		}
	}
	input.Project.RemoveNode(n)
	uc.session.Destroy(n)

	// The cut widget gives its name back to the copy.
	dup.SetName(name)
	uc.store(dup, uc.exactOnCut)

	logging.FromContext(logging.WithNode(ctx, name, dup.Class().Name)).
		Debug().Msg("widget cut")
	return dup, nil
}

// Paste adds a duplicate of the clipboard content to the project. The
// clipboard keeps its content, so it can be pasted again.
func (uc *ClipboardUseCase) Paste(ctx context.Context, input PasteInput) (*shadow.Node, error) {
	uc.mu.Lock()
	content, exact := uc.content, uc.exact
	uc.mu.Unlock()
	if content == nil {
		return nil, ErrClipboardEmpty
	}

	var parent *shadow.Node
	if input.Parent != "" {
		parent = input.Project.NodeByName(input.Parent)
		if parent == nil {
			return nil, ErrNodeNotFound
		}
		if content.Class().Toplevel {
			return nil, ErrToplevelNeedsNoSlot
		}
	} else if !content.Class().Toplevel {
		return nil, ErrPasteNeedsParent
	}

	dup := uc.session.Duplicate(content, exact)
	if dup == nil {
		return nil, ErrDuplicateFailed
	}
	if parent != nil {
		uc.session.AddChild(parent, dup, false)
	}
	input.Project.AddNode(dup)

	logging.FromContext(logging.WithNode(ctx, dup.Name(), dup.Class().Name)).
		Debug().Bool("exact", exact).Msg("widget pasted")
	return dup, nil
}

func (uc *ClipboardUseCase) lookup(input ClipboardInput) (*shadow.Node, error) {
	n := input.Project.NodeByName(input.Widget)
	if n == nil {
		return nil, ErrNodeNotFound
	}
	if n.IsInternal() {
		return nil, ErrInternalWidget
	}
	return n, nil
}

func (uc *ClipboardUseCase) store(n *shadow.Node, exact bool) {
	uc.mu.Lock()
	old := uc.content
	uc.content, uc.exact = n, exact
	uc.mu.Unlock()
	if old != nil {
		uc.session.Destroy(old)
	}
}
