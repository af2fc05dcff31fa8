package entity

// AnyChildClass is the wildcard key in WidgetClass.PackingDefaults.
const AnyChildClass = "*"

// InternalChildClass declares a sub-object that a composite class creates
// on its own during construction.
type InternalChildClass struct {
	Name  string
	Class string
	// Anarchist children are physically embedded but not packed by the parent.
	Anarchist bool
}

// WidgetClass is the catalog metadata of one toolkit class.
type WidgetClass struct {
	Name        string
	GenericName string // base for generated widget names
	Parent      string // parent class name, "" for roots
	Toplevel    bool

	Properties        []*PropertyClass
	PackingProperties []*PropertyClass

	// PackingDefaults maps a child class name (or AnyChildClass) to
	// packing property defaults, in textual form.
	PackingDefaults map[string]map[string]string

	Actions        []*ActionClass
	PackingActions []*ActionClass

	InternalChildren []InternalChildClass

	UsePlaceholders bool
	// SpecialChildType names the packing property used to tag children
	// with a special role (e.g. "type" for labels of frames).
	SpecialChildType string
	// PositionProperty names the packing property the container fills in
	// with the child index on attach, "" if none.
	PositionProperty string
	// SizeProperty names a virtual int property mirroring the number of
	// child slots of the container, "" if none.
	SizeProperty string

	DefaultWidth  int
	DefaultHeight int
}

// Property returns the declared property with the given identifier.
func (wc *WidgetClass) Property(id string) *PropertyClass {
	return findPropertyClass(wc.Properties, NormalizeID(id))
}

// PackingProperty returns the declared packing property with the given identifier.
func (wc *WidgetClass) PackingProperty(id string) *PropertyClass {
	return findPropertyClass(wc.PackingProperties, NormalizeID(id))
}

func findPropertyClass(list []*PropertyClass, id string) *PropertyClass {
	for _, pc := range list {
		if pc.ID == id {
			return pc
		}
	}
	return nil
}

// PackingDefault returns the textual default of a packing property for
// children of class childClass. Exact class entries win over the wildcard.
func (wc *WidgetClass) PackingDefault(childClass, id string) (string, bool) {
	id = NormalizeID(id)
	if defs, ok := wc.PackingDefaults[childClass]; ok {
		if v, ok := defs[id]; ok {
			return v, true
		}
	}
	if defs, ok := wc.PackingDefaults[AnyChildClass]; ok {
		if v, ok := defs[id]; ok {
			return v, true
		}
	}
	return "", false
}

// SupportsInternalChildren reports whether the class can look up internal
// children by name.
func (wc *WidgetClass) SupportsInternalChildren() bool {
	return len(wc.InternalChildren) > 0
}

// InternalChild returns the declaration of the named internal child.
func (wc *WidgetClass) InternalChild(name string) (InternalChildClass, bool) {
	for _, ic := range wc.InternalChildren {
		if ic.Name == name {
			return ic, true
		}
	}
	return InternalChildClass{}, false
}

// HasPackingActions reports whether children of this class get packing actions.
func (wc *WidgetClass) HasPackingActions() bool {
	return len(wc.PackingActions) > 0
}
