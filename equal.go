package datum

import (
	"bytes"
	"math"
)

// Equal reports structural equality of two values: same kind and same
// contents. Array comparison is order-sensitive, object comparison is not
// (keys are unordered by contract). Doubles compare numerically except that
// NaN equals NaN, so a tree containing NaN is equal to its own Clone. Int
// and Double never compare equal to each other, even for whole numbers.
func Equal(a, b Value) bool {
	ka := kindOf(a)
	if ka != kindOf(b) {
		return false
	}
	switch ka {
	case KindNull:
		return true
	case KindBool:
		return a.(Bool) == b.(Bool)
	case KindInt:
		return a.(Int) == b.(Int)
	case KindDouble:
		af, bf := float64(a.(Double)), float64(b.(Double))
		return af == bf || (math.IsNaN(af) && math.IsNaN(bf))
	case KindString:
		return a.(String) == b.(String)
	case KindBytes:
		return bytes.Equal(a.(Bytes), b.(Bytes))
	case KindArray:
		aa, ba := a.(Array), b.(Array)
		if len(aa) != len(ba) {
			return false
		}
		for i := range aa {
			if !Equal(aa[i], ba[i]) {
				return false
			}
		}
		return true
	case KindObject:
		ao, bo := a.(Object), b.(Object)
		if len(ao) != len(bo) {
			return false
		}
		for key, av := range ao {
			bv, ok := bo[key]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}
