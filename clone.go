package datum

// Clone returns a deep copy of v. Modifications to the copy do not affect
// the original: nested arrays, objects, and byte payloads are all duplicated.
//
// Values are immutable by contract, so Clone is only needed when a caller
// wants a tree it can legitimately mutate before treating it as immutable
// again.
func Clone(v Value) Value {
	switch v := v.(type) {
	case nil:
		return Null{}
	case Bytes:
		out := make(Bytes, len(v))
		copy(out, v)
		return out
	case Array:
		out := make(Array, len(v))
		for i, elem := range v {
			out[i] = Clone(elem)
		}
		return out
	case Object:
		out := make(Object, len(v))
		for key, entry := range v {
			out[key] = Clone(entry)
		}
		return out
	default:
		// Null, Bool, Int, Double, String are value types.
		return v
	}
}
