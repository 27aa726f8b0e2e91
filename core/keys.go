// Package core: coordinate label values and their comparison rules.
//
// A Key is one coordinate label. Grouping and sorting treat keys behind a
// single capability surface: every key supports equality, and keys of an
// orderable kind additionally support a total order. The kinds below are
// orderable; anything else is an opaque key that groups by == only.
//
// Datetime keys compare by full instant (time.Time.Compare), never
// truncated to a coarser calendar unit. Float NaN sorts after every
// number and equals only itself.

package core

import (
	"math"
	"strings"
	"time"
)

// Key is a coordinate label value.
//
// Orderable kinds: Go signed/unsigned integers, float32/float64, string,
// time.Time, and Tuple (lexicographic over orderable elements). Any other
// comparable value may be used as an opaque key.
type Key = any

// Tuple is a composite label: an ordered list of Keys, one per flattened
// level of a composite (stacked) dimension. Tuples compare lexicographically.
type Tuple []Key

// keyKind classifies a Key for comparison dispatch.
type keyKind int

const (
	kindOpaque keyKind = iota
	kindInt
	kindFloat
	kindString
	kindTime
	kindTuple
)

// kindOf returns the comparison kind of k, normalizing integer widths.
func kindOf(k Key) keyKind {
	switch k.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return kindInt
	case float32, float64:
		return kindFloat
	case string:
		return kindString
	case time.Time:
		return kindTime
	case Tuple:
		return kindTuple
	default:
		return kindOpaque
	}
}

// asInt64 converts any supported integer kind to int64.
func asInt64(k Key) int64 {
	switch v := k.(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	}
	return 0
}

// asFloat64 converts any supported numeric kind to float64.
func asFloat64(k Key) float64 {
	if kindOf(k) == kindInt {
		return float64(asInt64(k))
	}
	switch v := k.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

// CompareKeys orders two keys. It returns (-1|0|+1, true) when both keys are
// orderable and mutually comparable (numeric kinds compare across widths;
// int vs float compares by value), and (0, false) otherwise.
func CompareKeys(a, b Key) (int, bool) {
	ka, kb := kindOf(a), kindOf(b)

	// Numeric cross-kind comparison.
	if (ka == kindInt || ka == kindFloat) && (kb == kindInt || kb == kindFloat) {
		if ka == kindInt && kb == kindInt {
			return cmpInt64(asInt64(a), asInt64(b)), true
		}
		return cmpFloat64(asFloat64(a), asFloat64(b)), true
	}
	if ka != kb {
		return 0, false
	}

	switch ka {
	case kindString:
		return strings.Compare(a.(string), b.(string)), true
	case kindTime:
		return a.(time.Time).Compare(b.(time.Time)), true
	case kindTuple:
		return compareTuples(a.(Tuple), b.(Tuple))
	default:
		return 0, false
	}
}

// compareTuples orders equal-arity tuples lexicographically. Tuples of
// different arity are not mutually orderable: a prefix rule would make
// comparability non-transitive, and the index builder relies on pairwise
// comparability being a sound basis for sorting.
func compareTuples(a, b Tuple) (int, bool) {
	if len(a) != len(b) {
		return 0, false
	}
	for i := range a {
		c, ok := CompareKeys(a[i], b[i])
		if !ok {
			return 0, false
		}
		if c != 0 {
			return c, true
		}
	}
	return 0, true
}

// KeysEqual reports full equality of two keys: numeric keys by value,
// datetimes by instant, tuples element-wise, opaque keys by ==.
// Opaque keys must be comparable Go values.
func KeysEqual(a, b Key) bool {
	if c, ok := CompareKeys(a, b); ok {
		return c == 0
	}
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		return false
	}
	if ka == kindTuple {
		ta, tb := a.(Tuple), b.(Tuple)
		if len(ta) != len(tb) {
			return false
		}
		for i := range ta {
			if !KeysEqual(ta[i], tb[i]) {
				return false
			}
		}
		return true
	}
	return a == b
}

// KeyListsEqual reports element-wise equality of two label lists.
func KeyListsEqual(a, b []Key) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !KeysEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// KeysOrderable reports whether every key in labels is orderable and all
// keys are mutually comparable, i.e. a stable sort by CompareKeys is well
// defined for the whole list.
func KeysOrderable(labels []Key) bool {
	if len(labels) == 0 {
		return false
	}
	for i := 1; i < len(labels); i++ {
		if _, ok := CompareKeys(labels[0], labels[i]); !ok {
			return false
		}
	}
	// Self-comparability of the pivot covers single-element lists.
	_, ok := CompareKeys(labels[0], labels[0])
	return ok
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// cmpFloat64 orders floats totally: NaN sorts after every number and
// equals only itself, so a NaN label forms its own group instead of being
// absorbed into whichever group it is compared against first.
func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	case math.IsNaN(a):
		return 1
	default:
		return -1
	}
}
