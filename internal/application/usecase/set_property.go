package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/domain/shadow"
	"github.com/bnema/shade/internal/logging"
)

// SetPropertyUseCase errors.
var (
	ErrPropertyInsensitive = errors.New("property is insensitive")
	ErrInvalidValue        = errors.New("invalid property value")
)

// SetPropertyUseCase changes one property of a widget.
type SetPropertyUseCase struct {
	session *shadow.Session
}

// NewSetPropertyUseCase creates a new SetPropertyUseCase.
func NewSetPropertyUseCase(session *shadow.Session) *SetPropertyUseCase {
	return &SetPropertyUseCase{session: session}
}

// SetPropertyInput contains the parameters for a property change. Value is
// the textual form; object properties take space separated widget names.
type SetPropertyInput struct {
	Project  port.Project
	Widget   string
	Property string
	Value    string
	Packing  bool
}

// SetPropertyOutput reports the outcome of a property change.
type SetPropertyOutput struct {
	Node    *shadow.Node
	Rebuilt bool
}

// Execute parses and applies the value. Construct-only properties cannot be
// changed on a live object, so the widget is rebuilt instead.
func (uc *SetPropertyUseCase) Execute(ctx context.Context, input SetPropertyInput) (*SetPropertyOutput, error) {
	n := input.Project.NodeByName(input.Widget)
	if n == nil {
		return nil, ErrNodeNotFound
	}
	ctx = logging.WithNode(ctx, n.Name(), n.Class().Name)
	log := logging.FromContext(ctx)

	var p *shadow.Property
	if input.Packing {
		p = n.PackProperty(input.Property)
	} else {
		p = n.Property(input.Property)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrPropertyNotFound, input.Property)
	}
	if !p.Sensitive() {
		return nil, fmt.Errorf("%w: %s", ErrPropertyInsensitive, p.InsensitiveReason())
	}

	value, err := uc.parse(input.Project, p.Class(), input.Value)
	if err != nil {
		return nil, err
	}

	rebuild := p.Class().ConstructOnly && !input.Packing && n.Object() != nil
	if rebuild {
		uc.session.PushSuperuser()
	}
	ok := p.Set(value)
	if rebuild {
		uc.session.PopSuperuser()
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q for %s", ErrInvalidValue, input.Value, p.ID())
	}

	out := &SetPropertyOutput{Node: n}
	if rebuild {
		if err := uc.session.Rebuild(n); err != nil {
			return nil, fmt.Errorf("set %s: %w", p.ID(), err)
		}
		out.Rebuilt = true
	}

	log.Debug().
		Str("property", p.ID()).
		Str("value", input.Value).
		Bool("rebuilt", out.Rebuilt).
		Msg("property set")
	return out, nil
}

func (uc *SetPropertyUseCase) parse(project port.Project, pc *entity.PropertyClass, text string) (any, error) {
	if !pc.Type.IsObject() {
		v, err := entity.ParseValue(pc.Type, text)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		return v, nil
	}

	var objs []entity.Object
	for _, name := range strings.Fields(text) {
		target := project.NodeByName(name)
		if target == nil {
			return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, name)
		}
		objs = append(objs, target.Object())
	}
	if pc.Type == entity.TypeObject {
		if len(objs) == 0 {
			return nil, nil
		}
		return objs[0], nil
	}
	return objs, nil
}
