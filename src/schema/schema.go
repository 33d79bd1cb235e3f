package schema

import "fmt"

// Field value types understood by the validator.
const (
	TypeString   = "string"
	TypeEmail    = "email"
	TypeNumber   = "number"
	TypeInt      = "int"
	TypeBool     = "bool"
	TypeDateTime = "datetime"
	TypeClock    = "clock"
	TypeID       = "id"
	TypeArray    = "array"
)

// Field declares the constraints for one document field.
type Field struct {
	Name     string
	Type     string
	Required bool

	// String bounds; MaxLen 0 means unbounded.
	MinLen int
	MaxLen int

	// Numeric bounds; nil means unbounded.
	Min *float64
	Max *float64

	// Allowed values for enumerated status/category/type fields.
	Enum []string

	// Default injected for omitted optional fields (booleans defaulting to
	// true, counters defaulting to zero).
	Default interface{}

	// Item field definitions for nested line-item arrays.
	Items []Field
}

// Index declares a secondary index over one field of a collection.
type Index struct {
	Name   string
	Field  string
	Unique bool
}

// Collection is the fixed schema and index set of one entity kind.
type Collection struct {
	Kind    string
	Fields  []Field
	Indexes []Index

	// Numbered collections carry a monotonic business sequence number.
	Numbered bool
}

// Registry holds one validator per entity kind. Pure and stateless; it
// never touches the store engine.
type Registry struct {
	byKind map[string]*Collection
}

func NewRegistry(collections []*Collection) (*Registry, error) {
	r := &Registry{byKind: make(map[string]*Collection, len(collections))}
	for _, c := range collections {
		if c.Kind == "" {
			return nil, fmt.Errorf("collection with empty kind")
		}
		if _, exists := r.byKind[c.Kind]; exists {
			return nil, fmt.Errorf("collection %q declared twice", c.Kind)
		}
		for _, idx := range c.Indexes {
			if idx.Field == "" {
				return nil, fmt.Errorf("collection %q: index %q has no field", c.Kind, idx.Name)
			}
		}
		r.byKind[c.Kind] = c
	}
	return r, nil
}

// Collection returns the schema for the given kind.
func (r *Registry) Collection(kind string) (*Collection, bool) {
	c, ok := r.byKind[kind]
	return c, ok
}

func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.byKind))
	for kind := range r.byKind {
		kinds = append(kinds, kind)
	}
	return kinds
}

func ptr(v float64) *float64 { return &v }

// Declaration helpers used by the per-kind collection definitions.

func String(name string, minLen, maxLen int) Field {
	return Field{Name: name, Type: TypeString, Required: true, MinLen: minLen, MaxLen: maxLen}
}

func OptionalString(name string, maxLen int) Field {
	return Field{Name: name, Type: TypeString, MaxLen: maxLen}
}

func Email(name string, required bool) Field {
	return Field{Name: name, Type: TypeEmail, Required: required, MaxLen: 255}
}

// Number declares a required numeric field with a lower bound.
func Number(name string, min float64) Field {
	return Field{Name: name, Type: TypeNumber, Required: true, Min: ptr(min)}
}

// FreeNumber declares a required numeric field with no bounds, for signed
// amounts such as cash transaction values and stock adjustments.
func FreeNumber(name string) Field {
	return Field{Name: name, Type: TypeNumber, Required: true}
}

func OptionalNumber(name string, min float64) Field {
	return Field{Name: name, Type: TypeNumber, Min: ptr(min)}
}

// NumberDefault declares a numeric field that defaults when omitted.
func NumberDefault(name string, min, def float64) Field {
	return Field{Name: name, Type: TypeNumber, Required: true, Min: ptr(min), Default: def}
}

func Int(name string, min, max float64) Field {
	f := Field{Name: name, Type: TypeInt, Required: true, Min: ptr(min)}
	if max > min {
		f.Max = ptr(max)
	}
	return f
}

func Bool(name string, def bool) Field {
	return Field{Name: name, Type: TypeBool, Required: true, Default: def}
}

func Enum(name string, values ...string) Field {
	return Field{Name: name, Type: TypeString, Required: true, Enum: values}
}

func OptionalEnum(name string, values ...string) Field {
	return Field{Name: name, Type: TypeString, Enum: values}
}

func DateTime(name string) Field {
	return Field{Name: name, Type: TypeDateTime, Required: true}
}

func OptionalDateTime(name string) Field {
	return Field{Name: name, Type: TypeDateTime}
}

// Clock declares an optional wall-clock field in HH:MM form.
func Clock(name string) Field {
	return Field{Name: name, Type: TypeClock}
}

func ID(name string) Field {
	return Field{Name: name, Type: TypeID, Required: true}
}

func OptionalID(name string) Field {
	return Field{Name: name, Type: TypeID}
}

func Array(name string, items ...Field) Field {
	return Field{Name: name, Type: TypeArray, Required: true, Items: items}
}

func OptionalArray(name string, items ...Field) Field {
	return Field{Name: name, Type: TypeArray, Items: items}
}
