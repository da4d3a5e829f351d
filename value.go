package datum

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindNull is the JSON null literal.
	KindNull Kind = iota

	// KindBool is a boolean.
	KindBool

	// KindInt is a signed 64-bit integer.
	KindInt

	// KindDouble is an IEEE-754 double.
	KindDouble

	// KindString is UTF-8 text.
	KindString

	// KindBytes is a raw byte payload. It has no JSON representation.
	KindBytes

	// KindArray is an ordered sequence of values.
	KindArray

	// KindObject is a string-keyed mapping with unspecified iteration order.
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is a structured data value: one of Null, Bool, Int, Double, String,
// Bytes, Array, or Object. The union is closed; the unexported method keeps
// outside packages from adding variants, so a type switch over the eight
// types is exhaustive.
//
// Values are immutable trees built bottom-up. Treat Array and Object contents
// as read-only after construction; use Clone to obtain an isolated copy that
// is safe to modify.
type Value interface {
	// Kind reports which variant this value is.
	Kind() Kind

	value()
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a boolean value.
type Bool bool

// Int is a signed 64-bit integer value.
type Int int64

// Double is an IEEE-754 double value. NaN and infinities are representable
// but cannot be serialized to JSON; Marshal reports ErrInvalidNumber for them.
type Double float64

// String is a UTF-8 text value.
type String string

// Bytes is a raw byte payload. It exists so binary data can travel through
// the same tree as JSON-compatible values, but it cannot be serialized;
// Marshal reports ErrDataNotSupported when it reaches one.
type Bytes []byte

// Array is an ordered sequence of values.
type Array []Value

// Object maps string keys to values. Keys are unique; iteration order, and
// therefore serialized key order, is unspecified.
type Object map[string]Value

// Kind reports KindNull.
func (Null) Kind() Kind { return KindNull }

// Kind reports KindBool.
func (Bool) Kind() Kind { return KindBool }

// Kind reports KindInt.
func (Int) Kind() Kind { return KindInt }

// Kind reports KindDouble.
func (Double) Kind() Kind { return KindDouble }

// Kind reports KindString.
func (String) Kind() Kind { return KindString }

// Kind reports KindBytes.
func (Bytes) Kind() Kind { return KindBytes }

// Kind reports KindArray.
func (Array) Kind() Kind { return KindArray }

// Kind reports KindObject.
func (Object) Kind() Kind { return KindObject }

func (Null) value()   {}
func (Bool) value()   {}
func (Int) value()    {}
func (Double) value() {}
func (String) value() {}
func (Bytes) value()  {}
func (Array) value()  {}
func (Object) value() {}

// kindOf reports the kind of v, mapping a nil interface to KindNull.
func kindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}
