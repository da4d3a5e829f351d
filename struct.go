package datum

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Field naming follows the standard json tag.
	sentinel.Tag("json")
}

// FromStruct converts a Go struct to an Object value. Field names follow the
// json struct tag when present (including "-" to skip and ",omitempty" to
// drop zero values); otherwise the Go field name is used. Nested structs,
// pointers, slices, maps, and fields that already hold a Value are converted
// recursively.
func FromStruct[T any](v T) (Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Null{}, nil
	}
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return Null{}, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("FromStruct: %s is not a struct", rv.Kind())
	}
	if reflect.TypeFor[T]().Kind() == reflect.Struct {
		spec := sentinel.Scan[T]()
		return structValue(rv, &spec)
	}
	return structValue(rv, metadataFor(rv.Type()))
}

// FromGo converts an arbitrary Go value: primitives, []byte, slices, arrays,
// string-keyed maps, structs, pointers, and existing Values. Unrepresentable
// kinds (channels, funcs, complex numbers) fail.
func FromGo(v any) (Value, error) {
	if v == nil {
		return Null{}, nil
	}
	if val, ok := v.(Value); ok {
		return val, nil
	}
	return goValue(reflect.ValueOf(v))
}

// structValue builds an Object from a struct using its scanned metadata.
func structValue(rv reflect.Value, spec *sentinel.Metadata) (Value, error) {
	obj := make(Object, len(spec.Fields))
	for i := range spec.Fields {
		field := &spec.Fields[i]
		name, omitEmpty, skip := jsonName(field)
		if skip {
			continue
		}
		fv := rv.FieldByIndex(field.Index)
		if omitEmpty && fv.IsZero() {
			continue
		}
		val, err := goValue(fv)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		obj[name] = val
	}
	return obj, nil
}

// jsonName resolves a field's serialized name from its json tag.
func jsonName(field *sentinel.FieldMetadata) (name string, omitEmpty, skip bool) {
	tag, ok := field.Tags["json"]
	if !ok || tag == "" {
		return field.Name, false, false
	}
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = field.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

// goValue converts a single reflected value to a Value.
func goValue(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Null{}, nil
	}
	if rv.CanInterface() {
		if val, ok := rv.Interface().(Value); ok {
			return val, nil
		}
	}
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("uint value %d overflows int64", u)
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Double(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			out := make(Bytes, rv.Len())
			reflect.Copy(reflect.ValueOf(out), rv)
			return out, nil
		}
		return sequenceValue(rv)
	case reflect.Array:
		return sequenceValue(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map key type %s is not a string", rv.Type().Key())
		}
		obj := make(Object, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			val, err := goValue(iter.Value())
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", iter.Key().String(), err)
			}
			obj[iter.Key().String()] = val
		}
		return obj, nil
	case reflect.Struct:
		return structValue(rv, metadataFor(rv.Type()))
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null{}, nil
		}
		return goValue(rv.Elem())
	default:
		return nil, fmt.Errorf("cannot represent %s as a value", rv.Kind())
	}
}

// sequenceValue converts a slice or array to an Array.
func sequenceValue(rv reflect.Value) (Value, error) {
	out := make(Array, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		val, err := goValue(rv.Index(i))
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = val
	}
	return out, nil
}

var (
	metaCache   = make(map[reflect.Type]*sentinel.Metadata)
	metaCacheMu sync.RWMutex
)

// metadataFor returns cached metadata for a nested struct type, consulting
// sentinel first and falling back to a manual scan.
func metadataFor(rt reflect.Type) *sentinel.Metadata {
	// Fast path: read-lock cache check
	metaCacheMu.RLock()
	if cached, ok := metaCache[rt]; ok {
		metaCacheMu.RUnlock()
		return cached
	}
	metaCacheMu.RUnlock()

	// Slow path: build and cache with write-lock
	metaCacheMu.Lock()
	defer metaCacheMu.Unlock()

	// Double-check pattern
	if cached, ok := metaCache[rt]; ok {
		return cached
	}

	spec := scanStructType(rt)
	metaCache[rt] = spec
	return spec
}

// scanStructType builds metadata for a struct type that sentinel has not
// already scanned.
func scanStructType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		tags := make(map[string]string)
		if tag, ok := sf.Tag.Lookup("json"); ok {
			tags["json"] = tag
		}

		spec.Fields = append(spec.Fields, sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        tags,
		})
	}

	return &spec
}
