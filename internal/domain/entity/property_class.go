package entity

import (
	"fmt"
	"strings"
)

// PropertyKind tags how a property is serialized.
type PropertyKind int

const (
	KindNormal      PropertyKind = iota // plain property
	KindAtkProperty                     // accessibility property
	KindAtkRelation                     // accessibility relation
	KindAtkAction                       // accessibility action
	KindAccel                           // accelerator
)

var propertyKindNames = map[PropertyKind]string{
	KindNormal:      "normal",
	KindAtkProperty: "atk-property",
	KindAtkRelation: "atk-relation",
	KindAtkAction:   "atk-action",
	KindAccel:       "accel",
}

func (k PropertyKind) String() string {
	if name, ok := propertyKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k PropertyKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PropertyKind) UnmarshalText(text []byte) error {
	kind, ok := ParsePropertyKind(string(text))
	if !ok {
		return fmt.Errorf("unknown property kind %q", text)
	}
	*k = kind
	return nil
}

// ParsePropertyKind parses a kind name; the empty string is KindNormal.
func ParsePropertyKind(s string) (PropertyKind, bool) {
	if s == "" {
		return KindNormal, true
	}
	for k, name := range propertyKindNames {
		if name == s {
			return k, true
		}
	}
	return KindNormal, false
}

// PropertyClass is the catalog declaration of one property of a widget class.
type PropertyClass struct {
	ID   string
	Name string // human readable
	Type ValueType
	Kind PropertyKind

	// Values lists the accepted values of an enum property.
	Values []string

	// Default is the current default, which a catalog may override.
	Default any
	// OrigDefault is the default of the toolkit class itself.
	OrigDefault any

	Construct     bool // passed to the constructor (may change later)
	ConstructOnly bool // passed to the constructor, rebuild required to change
	Virtual       bool // computed by the adaptor, never set before construction
	Ignore        bool // not applied to the live object
	Packing       bool // defined by the parent container
	Save          bool // written to interface files
	Translatable  bool
}

// NormalizeID converts an identifier to the canonical dashed form.
func NormalizeID(id string) string {
	return strings.ReplaceAll(id, "_", "-")
}

// IsConstructTime reports whether the property belongs in the constructor
// parameter set.
func (pc *PropertyClass) IsConstructTime() bool {
	return pc.Construct || pc.ConstructOnly
}

// Match reports whether values of other can be copied into pc. Different
// classes may declare properties with the same identifier but unrelated
// meaning; those do not match.
func (pc *PropertyClass) Match(other *PropertyClass) bool {
	if pc == nil || other == nil {
		return false
	}
	return pc.ID == other.ID &&
		pc.Type == other.Type &&
		pc.Packing == other.Packing &&
		pc.Kind == other.Kind
}

// DefaultsDiffer reports whether the catalog overrides the toolkit default.
func (pc *PropertyClass) DefaultsDiffer() bool {
	return !ValuesEqual(pc.Default, pc.OrigDefault)
}

// ValidValue reports whether v is acceptable for the property.
func (pc *PropertyClass) ValidValue(v any) bool {
	if !pc.Type.Accepts(v) {
		return false
	}
	if pc.Type == TypeEnum && len(pc.Values) > 0 {
		s, _ := v.(string)
		for _, allowed := range pc.Values {
			if allowed == s {
				return true
			}
		}
		return false
	}
	return true
}
