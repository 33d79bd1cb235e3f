package schema

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/multierr"
)

// ValidationError aggregates every field-level violation found in one
// candidate document.
type ValidationError struct {
	Kind string
	err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s document: %v", e.Kind, e.err)
}

func (e *ValidationError) Unwrap() error { return e.err }

// Violations returns the individual field-level failures.
func (e *ValidationError) Violations() []error {
	return multierr.Errors(e.err)
}

// Validate checks a fully-formed candidate document against the declared
// constraints of its kind. It answers valid or invalid-with-reasons and has
// no side effects.
func (r *Registry) Validate(kind string, doc bson.M) error {
	col, ok := r.byKind[kind]
	if !ok {
		return fmt.Errorf("unknown collection kind %q", kind)
	}

	var err error
	for i := range col.Fields {
		f := &col.Fields[i]
		value, present := doc[f.Name]
		if !present || value == nil {
			if f.Required {
				err = multierr.Append(err, fmt.Errorf("%s: required field missing", f.Name))
			}
			continue
		}
		err = multierr.Append(err, checkValue(f, f.Name, value))
	}
	if err != nil {
		return &ValidationError{Kind: kind, err: err}
	}
	return nil
}

// ApplyDefaults fills declared default values for fields omitted from a
// map-shaped document, such as one imported from an external source. Typed
// entity constructors inject the same defaults at construction time, so
// documents originating in-process arrive here already complete.
func (r *Registry) ApplyDefaults(kind string, doc bson.M) bson.M {
	col, ok := r.byKind[kind]
	if !ok {
		return doc
	}
	for i := range col.Fields {
		f := &col.Fields[i]
		if f.Default == nil {
			continue
		}
		if _, present := doc[f.Name]; !present {
			doc[f.Name] = f.Default
		}
	}
	return doc
}

func checkValue(f *Field, path string, value interface{}) error {
	switch f.Type {
	case TypeString, TypeEmail, TypeID:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s: expected string, got %T", path, value)
		}
		return checkString(f, path, s)
	case TypeNumber, TypeInt:
		n, ok := numericValue(value)
		if !ok {
			return fmt.Errorf("%s: expected number, got %T", path, value)
		}
		return checkNumber(f, path, n)
	case TypeBool:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%s: expected boolean, got %T", path, value)
		}
		return nil
	case TypeDateTime:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s: expected ISO-8601 string, got %T", path, value)
		}
		if _, perr := time.Parse(time.RFC3339, s); perr != nil {
			return fmt.Errorf("%s: invalid ISO-8601 date-time %q", path, s)
		}
		return nil
	case TypeClock:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s: expected HH:MM string, got %T", path, value)
		}
		if _, perr := ParseClock(s); perr != nil {
			return fmt.Errorf("%s: %v", path, perr)
		}
		return nil
	case TypeArray:
		return checkArray(f, path, value)
	default:
		return fmt.Errorf("%s: unknown field type %q", path, f.Type)
	}
}

func checkString(f *Field, path, s string) error {
	var err error
	if f.MinLen > 0 && len(s) < f.MinLen {
		err = multierr.Append(err, fmt.Errorf("%s: shorter than %d characters", path, f.MinLen))
	}
	if f.MaxLen > 0 && len(s) > f.MaxLen {
		err = multierr.Append(err, fmt.Errorf("%s: longer than %d characters", path, f.MaxLen))
	}
	if len(f.Enum) > 0 && !contains(f.Enum, s) {
		err = multierr.Append(err, fmt.Errorf("%s: %q is not one of %s", path, s, strings.Join(f.Enum, ", ")))
	}
	if f.Type == TypeEmail && !strings.Contains(s, "@") {
		err = multierr.Append(err, fmt.Errorf("%s: %q is not a valid email address", path, s))
	}
	if f.Type == TypeID && s == "" && f.Required {
		err = multierr.Append(err, fmt.Errorf("%s: must not be empty", path))
	}
	return err
}

func checkNumber(f *Field, path string, n float64) error {
	var err error
	if f.Min != nil && n < *f.Min {
		err = multierr.Append(err, fmt.Errorf("%s: %v is below minimum %v", path, n, *f.Min))
	}
	if f.Max != nil && n > *f.Max {
		err = multierr.Append(err, fmt.Errorf("%s: %v is above maximum %v", path, n, *f.Max))
	}
	return err
}

func checkArray(f *Field, path string, value interface{}) error {
	items, ok := value.(primitive.A)
	if !ok {
		return fmt.Errorf("%s: expected array, got %T", path, value)
	}
	var err error
	for i, raw := range items {
		item, ok := raw.(bson.M)
		if !ok {
			err = multierr.Append(err, fmt.Errorf("%s[%d]: expected document, got %T", path, i, raw))
			continue
		}
		for j := range f.Items {
			itemField := &f.Items[j]
			itemPath := fmt.Sprintf("%s[%d].%s", path, i, itemField.Name)
			v, present := item[itemField.Name]
			if !present || v == nil {
				if itemField.Required {
					err = multierr.Append(err, fmt.Errorf("%s: required field missing", itemPath))
				}
				continue
			}
			err = multierr.Append(err, checkValue(itemField, itemPath, v))
		}
	}
	return err
}

// numericValue normalizes the integer widths BSON decoding may produce.
func numericValue(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// ParseClock parses an HH:MM wall-clock value into fractional hours.
func ParseClock(s string) (float64, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	return float64(h) + float64(m)/60, nil
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
