package entity

// CreateReason records why a shadow node was constructed.
type CreateReason int

const (
	CreateUser    CreateReason = iota // created interactively
	CreateLoad                        // read from an interface file
	CreateCopy                        // duplicated from a template node
	CreateRebuild                     // live object re-instantiated
)

func (r CreateReason) String() string {
	switch r {
	case CreateUser:
		return "user"
	case CreateLoad:
		return "load"
	case CreateCopy:
		return "copy"
	case CreateRebuild:
		return "rebuild"
	}
	return "unknown"
}

// PropInfo is one serialized property value.
type PropInfo struct {
	Name         string       `yaml:"name"`
	Kind         PropertyKind `yaml:"kind,omitempty"`
	Value        string       `yaml:"value"`
	Translatable bool         `yaml:"translatable,omitempty"`
}

// SignalInfo is one serialized signal binding.
type SignalInfo struct {
	Name    string `yaml:"name"`
	Handler string `yaml:"handler"`
	Object  string `yaml:"object,omitempty"`
	After   bool   `yaml:"after,omitempty"`
	Lookup  bool   `yaml:"lookup,omitempty"`
}

// ChildInfo is one serialized child slot. A nil Widget is a placeholder.
type ChildInfo struct {
	InternalChild string      `yaml:"internal_child,omitempty"`
	Widget        *WidgetInfo `yaml:"widget,omitempty"`
	// Packing holds packing properties, including the special child type.
	Packing []PropInfo `yaml:"packing,omitempty"`
}

// IsPlaceholder reports whether the slot holds no widget.
func (ci *ChildInfo) IsPlaceholder() bool {
	return ci.Widget == nil
}

// WidgetInfo is the serialized form of one widget and its subtree.
type WidgetInfo struct {
	Class      string       `yaml:"class"`
	Name       string       `yaml:"name"`
	Properties []PropInfo   `yaml:"properties,omitempty"`
	Signals    []SignalInfo `yaml:"signals,omitempty"`
	Children   []ChildInfo  `yaml:"children,omitempty"`
}

// Property returns the serialized property with the given name and kind.
func (wi *WidgetInfo) Property(name string, kind PropertyKind) (PropInfo, bool) {
	return findPropInfo(wi.Properties, name, kind)
}

// PackingProperty returns the serialized packing property with the given name.
func (ci *ChildInfo) PackingProperty(name string) (PropInfo, bool) {
	return findPropInfo(ci.Packing, name, KindNormal)
}

func findPropInfo(props []PropInfo, name string, kind PropertyKind) (PropInfo, bool) {
	name = NormalizeID(name)
	for _, p := range props {
		if NormalizeID(p.Name) == name && p.Kind == kind {
			return p, true
		}
	}
	return PropInfo{}, false
}

// Interface is a serialized interface document: an ordered list of toplevels.
type Interface struct {
	Toplevels []*WidgetInfo `yaml:"toplevels"`
}
