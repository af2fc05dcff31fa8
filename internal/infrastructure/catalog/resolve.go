package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bnema/shade/internal/domain/entity"
)

// Resolve converts catalog files into widget classes. Later files override
// classes of the same name, and every class inherits what it leaves unset
// from its parent.
func Resolve(files ...*File) ([]*entity.WidgetClass, error) {
	specs := make(map[string]ClassSpec)
	var order []string
	for _, f := range files {
		if f == nil {
			continue
		}
		for _, spec := range f.Classes {
			if spec.Name == "" {
				return nil, fmt.Errorf("catalog %q: class without a name", f.Name)
			}
			if _, ok := specs[spec.Name]; !ok {
				order = append(order, spec.Name)
			}
			specs[spec.Name] = spec
		}
	}

	r := &resolver{specs: specs, done: make(map[string]*entity.WidgetClass), visiting: make(map[string]bool)}
	var errs []error
	classes := make([]*entity.WidgetClass, 0, len(order))
	for _, name := range order {
		c, err := r.resolve(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		classes = append(classes, c)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	sort.SliceStable(classes, func(i, j int) bool { return classes[i].Name < classes[j].Name })
	return classes, nil
}

type resolver struct {
	specs    map[string]ClassSpec
	done     map[string]*entity.WidgetClass
	visiting map[string]bool
}

func (r *resolver) resolve(name string) (*entity.WidgetClass, error) {
	if c, ok := r.done[name]; ok {
		return c, nil
	}
	spec, ok := r.specs[name]
	if !ok {
		return nil, fmt.Errorf("unknown class %q", name)
	}
	if r.visiting[name] {
		return nil, fmt.Errorf("class %q inherits from itself", name)
	}
	r.visiting[name] = true
	defer delete(r.visiting, name)

	var parent *entity.WidgetClass
	if spec.Parent != "" {
		p, err := r.resolve(spec.Parent)
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", name, err)
		}
		parent = p
	}

	c, err := buildClass(spec, parent)
	if err != nil {
		return nil, fmt.Errorf("class %q: %w", name, err)
	}
	r.done[name] = c
	return c, nil
}

func buildClass(spec ClassSpec, parent *entity.WidgetClass) (*entity.WidgetClass, error) {
	c := &entity.WidgetClass{
		Name:             spec.Name,
		GenericName:      spec.GenericName,
		Parent:           spec.Parent,
		SpecialChildType: spec.SpecialChildType,
		PositionProperty: entity.NormalizeID(spec.PositionProperty),
		SizeProperty:     entity.NormalizeID(spec.SizeProperty),
		DefaultWidth:     spec.DefaultWidth,
		DefaultHeight:    spec.DefaultHeight,
	}
	if parent != nil {
		inherit(c, parent)
	}
	if spec.Toplevel != nil {
		c.Toplevel = *spec.Toplevel
	}
	if spec.UsePlaceholders != nil {
		c.UsePlaceholders = *spec.UsePlaceholders
	}

	props, err := convertProperties(spec.Properties, false)
	if err != nil {
		return nil, err
	}
	c.Properties = mergeProperties(c.Properties, props)

	packing, err := convertProperties(spec.PackingProperties, true)
	if err != nil {
		return nil, err
	}
	c.PackingProperties = mergeProperties(c.PackingProperties, packing)

	for childClass, defs := range spec.PackingDefaults {
		if c.PackingDefaults == nil {
			c.PackingDefaults = make(map[string]map[string]string)
		}
		merged := make(map[string]string)
		for k, v := range c.PackingDefaults[childClass] {
			merged[k] = v
		}
		for k, v := range defs {
			merged[entity.NormalizeID(k)] = v
		}
		c.PackingDefaults[childClass] = merged
	}

	if len(spec.Actions) > 0 {
		c.Actions = convertActions(spec.Actions, "")
	}
	if len(spec.PackingActions) > 0 {
		c.PackingActions = convertActions(spec.PackingActions, "")
	}
	if len(spec.InternalChildren) > 0 {
		c.InternalChildren = nil
		for _, ic := range spec.InternalChildren {
			c.InternalChildren = append(c.InternalChildren, entity.InternalChildClass{
				Name:      ic.Name,
				Class:     ic.Class,
				Anarchist: ic.Anarchist,
			})
		}
	}
	return c, nil
}

func inherit(c, parent *entity.WidgetClass) {
	if c.GenericName == "" {
		c.GenericName = parent.GenericName
	}
	c.Toplevel = parent.Toplevel
	c.UsePlaceholders = parent.UsePlaceholders
	if c.SpecialChildType == "" {
		c.SpecialChildType = parent.SpecialChildType
	}
	if c.PositionProperty == "" {
		c.PositionProperty = parent.PositionProperty
	}
	if c.SizeProperty == "" {
		c.SizeProperty = parent.SizeProperty
	}
	if c.DefaultWidth == 0 {
		c.DefaultWidth = parent.DefaultWidth
	}
	if c.DefaultHeight == 0 {
		c.DefaultHeight = parent.DefaultHeight
	}
	c.Properties = append([]*entity.PropertyClass(nil), parent.Properties...)
	c.PackingProperties = append([]*entity.PropertyClass(nil), parent.PackingProperties...)
	if parent.PackingDefaults != nil {
		c.PackingDefaults = make(map[string]map[string]string, len(parent.PackingDefaults))
		for k, v := range parent.PackingDefaults {
			c.PackingDefaults[k] = v
		}
	}
	c.Actions = parent.Actions
	c.PackingActions = parent.PackingActions
	c.InternalChildren = append([]entity.InternalChildClass(nil), parent.InternalChildren...)
}

// mergeProperties overrides inherited declarations by identifier and
// appends new ones.
func mergeProperties(base, overrides []*entity.PropertyClass) []*entity.PropertyClass {
	out := append([]*entity.PropertyClass(nil), base...)
	for _, o := range overrides {
		replaced := false
		for i, b := range out {
			if b.ID == o.ID {
				out[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return out
}

func convertProperties(specs []PropertySpec, packing bool) ([]*entity.PropertyClass, error) {
	var out []*entity.PropertyClass
	for _, spec := range specs {
		pc, err := convertProperty(spec, packing)
		if err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, nil
}

func convertProperty(spec PropertySpec, packing bool) (*entity.PropertyClass, error) {
	if spec.ID == "" {
		return nil, errors.New("property without an id")
	}
	t, err := entity.ParseValueType(spec.Type)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", spec.ID, err)
	}
	kind, ok := entity.ParsePropertyKind(spec.Kind)
	if !ok {
		return nil, fmt.Errorf("property %q: unknown kind %q", spec.ID, spec.Kind)
	}
	pc := &entity.PropertyClass{
		ID:            entity.NormalizeID(spec.ID),
		Name:          spec.Name,
		Type:          t,
		Kind:          kind,
		Values:        spec.Values,
		Construct:     spec.Construct,
		ConstructOnly: spec.ConstructOnly,
		Virtual:       spec.Virtual,
		Ignore:        spec.Ignore,
		Packing:       packing,
		Save:          spec.Save == nil || *spec.Save,
		Translatable:  spec.Translatable,
	}
	if pc.Name == "" {
		pc.Name = pc.ID
	}
	if t == entity.TypeEnum && len(spec.Values) == 0 {
		return nil, fmt.Errorf("property %q: enum without values", spec.ID)
	}

	pc.Default, err = convertValue(pc, spec.Default)
	if err != nil {
		return nil, fmt.Errorf("property %q default: %w", spec.ID, err)
	}
	if spec.OrigDefault == nil {
		pc.OrigDefault = entity.CopyValue(pc.Default)
	} else if pc.OrigDefault, err = convertValue(pc, spec.OrigDefault); err != nil {
		return nil, fmt.Errorf("property %q orig_default: %w", spec.ID, err)
	}
	return pc, nil
}

// convertValue turns a decoded YAML scalar into a value of the property type.
func convertValue(pc *entity.PropertyClass, raw any) (any, error) {
	if raw == nil {
		if pc.Type == entity.TypeEnum {
			return pc.Values[0], nil
		}
		return pc.Type.ZeroValue(), nil
	}
	var v any
	switch pc.Type {
	case entity.TypeBool:
		switch b := raw.(type) {
		case bool:
			v = b
		case string:
			parsed, err := entity.ParseValue(pc.Type, b)
			if err != nil {
				return nil, err
			}
			v = parsed
		}
	case entity.TypeInt:
		switch n := raw.(type) {
		case int:
			v = n
		case float64:
			if n == float64(int(n)) {
				v = int(n)
			}
		case string:
			parsed, err := entity.ParseValue(pc.Type, n)
			if err != nil {
				return nil, err
			}
			v = parsed
		}
	case entity.TypeFloat:
		switch f := raw.(type) {
		case float64:
			v = f
		case int:
			v = float64(f)
		case string:
			parsed, err := entity.ParseValue(pc.Type, f)
			if err != nil {
				return nil, err
			}
			v = parsed
		}
	case entity.TypeString, entity.TypeEnum:
		v = fmt.Sprint(raw)
	case entity.TypeObject, entity.TypeObjects:
		return nil, errors.New("object properties cannot have a default")
	}
	if v == nil || !pc.ValidValue(v) {
		return nil, fmt.Errorf("invalid %s value %v", pc.Type, raw)
	}
	return v, nil
}

func convertActions(specs []ActionSpec, prefix string) []*entity.ActionClass {
	out := make([]*entity.ActionClass, 0, len(specs))
	for _, spec := range specs {
		path := spec.ID
		if prefix != "" {
			path = prefix + "/" + spec.ID
		}
		out = append(out, &entity.ActionClass{
			Path:      path,
			Label:     spec.Label,
			Important: spec.Important,
			Actions:   convertActions(spec.Actions, path),
		})
	}
	return out
}
