package datum

// Member is one ordered key/value pair recognized inside a JSON object. The
// grammar engine reports members in document order; duplicate keys are legal
// at this layer and resolve last-write-wins when folded into an Object.
type Member struct {
	Key   string
	Value Value
}

// Number is the two-case numeric union produced by the grammar engine. The
// engine owns the decision of which form a token becomes: a mantissa dot or
// an exponent yields a double, anything else an integer.
type Number struct {
	isInt bool
	i     int64
	f     float64
}

// IntNumber returns a Number holding a signed 64-bit integer.
func IntNumber(i int64) Number {
	return Number{isInt: true, i: i}
}

// DoubleNumber returns a Number holding an IEEE-754 double.
func DoubleNumber(f float64) Number {
	return Number{f: f}
}

// IsInt reports whether the number is the integer case.
func (n Number) IsInt() bool { return n.isInt }

// Int64 returns the integer case. Zero for the double case.
func (n Number) Int64() int64 { return n.i }

// Float64 returns the numeric value as a double, converting the integer case.
func (n Number) Float64() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// Builder is the set of construction callbacks handed to the grammar engine
// binding. Each function turns one recognized JSON primitive into a Value;
// the container functions compose already-built children. Builders perform
// no parsing and must be pure.
//
// Replace individual functions to intern strings, canonicalize numbers, or
// produce alternative container representations without touching the engine
// binding.
type Builder struct {
	// Object folds ordered members into an object value. Later duplicate
	// keys win.
	Object func(members []Member) Value

	// Array composes elements into an array value, preserving order.
	Array func(elems []Value) Value

	// Null produces the null value.
	Null func() Value

	// Bool produces a boolean value.
	Bool func(b bool) Value

	// String produces a text value.
	String func(s string) Value

	// Number maps the engine's numeric union to a value.
	Number func(n Number) Value
}

// DefaultBuilder returns the construction set producing this package's
// standard Value types.
func DefaultBuilder() Builder {
	return Builder{
		Object: func(members []Member) Value {
			obj := make(Object, len(members))
			for _, m := range members {
				obj[m.Key] = m.Value
			}
			return obj
		},
		Array: func(elems []Value) Value {
			return Array(elems)
		},
		Null: func() Value {
			return Null{}
		},
		Bool: func(b bool) Value {
			return Bool(b)
		},
		String: func(s string) Value {
			return String(s)
		},
		Number: func(n Number) Value {
			if n.IsInt() {
				return Int(n.Int64())
			}
			return Double(n.Float64())
		},
	}
}
