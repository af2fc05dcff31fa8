// Package catalog loads widget class metadata from YAML catalog files and
// serves the resulting adaptors by class name.
package catalog

// File is the on-disk form of a widget catalog.
type File struct {
	// Name identifies the catalog in logs.
	Name    string      `yaml:"name" json:"name" jsonschema:"description=Catalog name"`
	Classes []ClassSpec `yaml:"classes" json:"classes"`
}

// ClassSpec declares one widget class. Unset fields are inherited from
// the parent class.
type ClassSpec struct {
	Name        string `yaml:"name" json:"name" jsonschema:"required"`
	GenericName string `yaml:"generic_name,omitempty" json:"generic_name,omitempty" jsonschema:"description=Base for generated widget names"`
	Parent      string `yaml:"parent,omitempty" json:"parent,omitempty"`

	Toplevel        *bool `yaml:"toplevel,omitempty" json:"toplevel,omitempty"`
	UsePlaceholders *bool `yaml:"use_placeholders,omitempty" json:"use_placeholders,omitempty"`

	SpecialChildType string `yaml:"special_child_type,omitempty" json:"special_child_type,omitempty"`
	PositionProperty string `yaml:"position_property,omitempty" json:"position_property,omitempty"`
	SizeProperty     string `yaml:"size_property,omitempty" json:"size_property,omitempty"`

	DefaultWidth  int `yaml:"default_width,omitempty" json:"default_width,omitempty"`
	DefaultHeight int `yaml:"default_height,omitempty" json:"default_height,omitempty"`

	Properties        []PropertySpec `yaml:"properties,omitempty" json:"properties,omitempty"`
	PackingProperties []PropertySpec `yaml:"packing_properties,omitempty" json:"packing_properties,omitempty"`

	// PackingDefaults maps a child class name, or "*", to packing defaults.
	PackingDefaults map[string]map[string]string `yaml:"packing_defaults,omitempty" json:"packing_defaults,omitempty"`

	Actions        []ActionSpec `yaml:"actions,omitempty" json:"actions,omitempty"`
	PackingActions []ActionSpec `yaml:"packing_actions,omitempty" json:"packing_actions,omitempty"`

	InternalChildren []InternalChildSpec `yaml:"internal_children,omitempty" json:"internal_children,omitempty"`
}

// PropertySpec declares one property.
type PropertySpec struct {
	ID     string   `yaml:"id" json:"id" jsonschema:"required"`
	Name   string   `yaml:"name,omitempty" json:"name,omitempty"`
	Type   string   `yaml:"type" json:"type" jsonschema:"required,enum=string,enum=bool,enum=int,enum=float,enum=enum,enum=object,enum=objects"`
	Kind   string   `yaml:"kind,omitempty" json:"kind,omitempty" jsonschema:"enum=normal,enum=atk-property,enum=atk-relation,enum=atk-action,enum=accel"`
	Values []string `yaml:"values,omitempty" json:"values,omitempty"`

	Default     any `yaml:"default,omitempty" json:"default,omitempty"`
	OrigDefault any `yaml:"orig_default,omitempty" json:"orig_default,omitempty" jsonschema:"description=Toolkit default when the catalog overrides it"`

	Construct     bool  `yaml:"construct,omitempty" json:"construct,omitempty"`
	ConstructOnly bool  `yaml:"construct_only,omitempty" json:"construct_only,omitempty"`
	Virtual       bool  `yaml:"virtual,omitempty" json:"virtual,omitempty"`
	Ignore        bool  `yaml:"ignore,omitempty" json:"ignore,omitempty"`
	Save          *bool `yaml:"save,omitempty" json:"save,omitempty"`
	Translatable  bool  `yaml:"translatable,omitempty" json:"translatable,omitempty"`
}

// ActionSpec declares an action or an action group.
type ActionSpec struct {
	ID        string       `yaml:"id" json:"id" jsonschema:"required"`
	Label     string       `yaml:"label,omitempty" json:"label,omitempty"`
	Important bool         `yaml:"important,omitempty" json:"important,omitempty"`
	Actions   []ActionSpec `yaml:"actions,omitempty" json:"actions,omitempty"`
}

// InternalChildSpec declares an internal child.
type InternalChildSpec struct {
	Name      string `yaml:"name" json:"name" jsonschema:"required"`
	Class     string `yaml:"class" json:"class" jsonschema:"required"`
	Anarchist bool   `yaml:"anarchist,omitempty" json:"anarchist,omitempty"`
}
