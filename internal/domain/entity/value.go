// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Object is a live toolkit object. Identity is pointer identity, which makes
// any Object usable as a map key.
type Object interface {
	// ObjectID returns a stable identifier for logs and debugging.
	ObjectID() string
}

// ValueType is the type of a property value.
type ValueType int

const (
	TypeString  ValueType = iota // string
	TypeBool                     // bool
	TypeInt                      // int
	TypeFloat                    // float64
	TypeEnum                     // string restricted to PropertyClass.Values
	TypeObject                   // Object (or nil)
	TypeObjects                  // []Object
)

var valueTypeNames = map[ValueType]string{
	TypeString:  "string",
	TypeBool:    "bool",
	TypeInt:     "int",
	TypeFloat:   "float",
	TypeEnum:    "enum",
	TypeObject:  "object",
	TypeObjects: "objects",
}

func (t ValueType) String() string {
	if name, ok := valueTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseValueType parses a type name as written in catalog files.
func ParseValueType(s string) (ValueType, error) {
	for t, name := range valueTypeNames {
		if name == s {
			return t, nil
		}
	}
	return TypeString, fmt.Errorf("unknown value type %q", s)
}

// IsObject reports whether values of this type reference live objects.
func (t ValueType) IsObject() bool {
	return t == TypeObject || t == TypeObjects
}

// ZeroValue returns the zero value for the type.
func (t ValueType) ZeroValue() any {
	switch t {
	case TypeBool:
		return false
	case TypeInt:
		return 0
	case TypeFloat:
		return 0.0
	case TypeObject:
		return nil
	case TypeObjects:
		return []Object(nil)
	default:
		return ""
	}
}

// Accepts reports whether v is a valid value for the type.
func (t ValueType) Accepts(v any) bool {
	switch t {
	case TypeBool:
		_, ok := v.(bool)
		return ok
	case TypeInt:
		_, ok := v.(int)
		return ok
	case TypeFloat:
		_, ok := v.(float64)
		return ok
	case TypeString, TypeEnum:
		_, ok := v.(string)
		return ok
	case TypeObject:
		if v == nil {
			return true
		}
		_, ok := v.(Object)
		return ok
	case TypeObjects:
		if v == nil {
			return true
		}
		_, ok := v.([]Object)
		return ok
	}
	return false
}

// ParseValue converts the textual form of a scalar value. Object types cannot
// be parsed without a name scope and return an error.
func ParseValue(t ValueType, s string) (any, error) {
	switch t {
	case TypeBool:
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "yes", "1":
			return true, nil
		case "false", "no", "0", "":
			return false, nil
		}
		return nil, fmt.Errorf("invalid bool %q", s)
	case TypeInt:
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("invalid int %q: %w", s, err)
		}
		return v, nil
	case TypeFloat:
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float %q: %w", s, err)
		}
		return v, nil
	case TypeString, TypeEnum:
		return s, nil
	}
	return nil, fmt.Errorf("cannot parse %s value from text", t)
}

// FormatValue returns the textual form of a scalar value.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return val
	case Object:
		return val.ObjectID()
	}
	return fmt.Sprint(v)
}

// ValuesEqual compares two property values. Objects compare by identity.
func ValuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return isNilValue(a) && isNilValue(b)
	}
	la, aok := a.([]Object)
	lb, bok := b.([]Object)
	if aok || bok {
		if len(la) != len(lb) {
			return false
		}
		for i := range la {
			if la[i] != lb[i] {
				return false
			}
		}
		return true
	}
	if oa, ok := a.(Object); ok {
		ob, ok := b.(Object)
		return ok && oa == ob
	}
	return reflect.DeepEqual(a, b)
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	if l, ok := v.([]Object); ok {
		return len(l) == 0
	}
	return false
}

// CopyValue returns a copy of v that shares no mutable state with it.
func CopyValue(v any) any {
	if l, ok := v.([]Object); ok && l != nil {
		return append([]Object(nil), l...)
	}
	return v
}
