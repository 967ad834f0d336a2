package record

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/spicery/treenode/pkg/tree"
)

// Record is a node encoded under configurable field names.
type Record = map[string]any

// Builder encodes each node as a Record keyed by names.
func Builder[K comparable, V any](names FieldNames) tree.BuildFunc[K, V, Record] {
	return func(n *tree.Node[K, V], children func() []Record) Record {
		return Record{
			names.ID:       n.ID(),
			names.Content:  n.Content(),
			names.Children: children(),
		}
	}
}

// Destructurer is the inverse of Builder. It also accepts records decoded
// from JSON or YAML, where children arrive as []any, numbers may have a
// different numeric type than K or V and containers arrive untyped.
func Destructurer[K comparable, V any](names FieldNames) tree.DestructureFunc[K, V, Record] {
	return func(r Record) (K, V, []Record, error) {
		var id K
		var content V

		rawID, ok := r[names.ID]
		if !ok || rawID == nil {
			return id, content, nil, fmt.Errorf("%w: missing %q", ErrMalformedRecord, names.ID)
		}
		if id, ok = convert[K](rawID); !ok {
			return id, content, nil, fmt.Errorf("%w: %q is %T, not %v", ErrMalformedRecord, names.ID, rawID, reflect.TypeFor[K]())
		}

		if rawContent := r[names.Content]; rawContent != nil {
			if content, ok = convert[V](rawContent); !ok {
				return id, content, nil, fmt.Errorf("%w: %q of %v is %T, not %v", ErrMalformedRecord, names.Content, id, rawContent, reflect.TypeFor[V]())
			}
		}

		children, err := childRecords(r[names.Children])
		if err != nil {
			return id, content, nil, fmt.Errorf("%q of %v: %w", names.Children, id, err)
		}
		return id, content, children, nil
	}
}

func Encode[K comparable, V any](n *tree.Node[K, V], names FieldNames) Record {
	return tree.EncodeWith(n, Builder[K, V](names))
}

func Parse[K comparable, V any](r Record, names FieldNames) (*tree.Node[K, V], error) {
	return tree.ParseWith(r, Destructurer[K, V](names))
}

func childRecords(raw any) ([]Record, error) {
	switch children := raw.(type) {
	case nil:
		return nil, nil
	case []Record:
		return children, nil
	case []any:
		records := make([]Record, 0, len(children))
		for i, child := range children {
			r, ok := child.(Record)
			if !ok {
				return nil, fmt.Errorf("%w: child %d is %T, not a record", ErrMalformedRecord, i, child)
			}
			records = append(records, r)
		}
		return records, nil
	default:
		return nil, fmt.Errorf("%w: %T is not a sequence", ErrMalformedRecord, raw)
	}
}

// convert coerces a decoded value to T. Numbers convert between numeric
// kinds only when no precision is lost; slices and maps convert element by
// element.
func convert[T any](v any) (T, bool) {
	converted, ok := convertValue(reflect.ValueOf(v), reflect.TypeFor[T]())
	if !ok {
		var zero T
		return zero, false
	}
	t, _ := converted.Interface().(T)
	return t, true
}

var numberType = reflect.TypeFor[json.Number]()

func convertValue(value reflect.Value, target reflect.Type) (reflect.Value, bool) {
	for value.IsValid() && value.Kind() == reflect.Interface {
		value = value.Elem()
	}
	if !value.IsValid() {
		return reflect.Zero(target), true
	}
	if value.Type() == numberType {
		return convertNumber(json.Number(value.String()), target)
	}

	if target.Kind() == reflect.Interface {
		// Containers are rebuilt so numbers nested in them are normalized.
		switch value.Kind() {
		case reflect.Slice, reflect.Map:
			inner, ok := convertValue(value, value.Type())
			if !ok {
				return reflect.Value{}, false
			}
			value = inner
		}
		if !value.Type().AssignableTo(target) {
			return reflect.Value{}, false
		}
		out := reflect.New(target).Elem()
		out.Set(value)
		return out, true
	}

	switch {
	case isNumeric(value.Kind()) && isNumeric(target.Kind()):
		converted := value.Convert(target)
		if !converted.Convert(value.Type()).Equal(value) {
			return reflect.Value{}, false
		}
		return converted, true
	case target.Kind() == reflect.Slice && (value.Kind() == reflect.Slice || value.Kind() == reflect.Array):
		if value.Kind() == reflect.Slice && value.IsNil() {
			return reflect.Zero(target), true
		}
		out := reflect.MakeSlice(target, value.Len(), value.Len())
		for i := range value.Len() {
			elem, ok := convertValue(value.Index(i), target.Elem())
			if !ok {
				return reflect.Value{}, false
			}
			out.Index(i).Set(elem)
		}
		return out, true
	case target.Kind() == reflect.Map && value.Kind() == reflect.Map:
		if value.IsNil() {
			return reflect.Zero(target), true
		}
		out := reflect.MakeMapWithSize(target, value.Len())
		entries := value.MapRange()
		for entries.Next() {
			key, ok := convertValue(entries.Key(), target.Key())
			if !ok {
				return reflect.Value{}, false
			}
			elem, ok := convertValue(entries.Value(), target.Elem())
			if !ok {
				return reflect.Value{}, false
			}
			out.SetMapIndex(key, elem)
		}
		return out, true
	case value.Type().AssignableTo(target):
		return value, true
	}
	return reflect.Value{}, false
}

// convertNumber parses a JSON number straight into the target kind, so
// integers beyond float64 precision survive. Into an interface it becomes
// an int64 when integral and a float64 otherwise.
func convertNumber(number json.Number, target reflect.Type) (reflect.Value, bool) {
	switch target.Kind() {
	case reflect.Interface:
		var parsed any
		if i, err := number.Int64(); err == nil {
			parsed = i
		} else if f, err := number.Float64(); err == nil {
			parsed = f
		} else {
			return reflect.Value{}, false
		}
		return convertValue(reflect.ValueOf(parsed), target)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i, err := strconv.ParseInt(number.String(), 10, target.Bits()); err == nil {
			return reflect.ValueOf(i).Convert(target), true
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u, err := strconv.ParseUint(number.String(), 10, target.Bits()); err == nil {
			return reflect.ValueOf(u).Convert(target), true
		}
	case reflect.Float32, reflect.Float64:
		if f, err := strconv.ParseFloat(number.String(), target.Bits()); err == nil {
			return reflect.ValueOf(f).Convert(target), true
		}
		return reflect.Value{}, false
	default:
		return reflect.Value{}, false
	}
	// Integral kinds also accept forms like 3.0 or 1e3 when exact.
	f, err := number.Float64()
	if err != nil {
		return reflect.Value{}, false
	}
	return convertValue(reflect.ValueOf(f), target)
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
