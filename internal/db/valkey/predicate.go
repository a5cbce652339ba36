package valkey

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/kailas-cloud/dynoscan/internal/domain/scan/filter"
)

// predicateFunc evaluates one clause against an attribute value.
// present is false when the record lacks the attribute.
type predicateFunc func(val any, present bool, c filter.Clause) bool

// predicates mirrors DynamoDB filter semantics: comparisons across types are
// false, and only ne and not_exists match a missing attribute.
var predicates = map[filter.Operator]predicateFunc{
	filter.OpEq: func(v any, ok bool, c filter.Clause) bool {
		return ok && equal(v, c.Value())
	},
	filter.OpNe: func(v any, ok bool, c filter.Clause) bool {
		return !ok || !equal(v, c.Value())
	},
	filter.OpLt: func(v any, ok bool, c filter.Clause) bool {
		cmp, ordered := compare(v, c.Value())
		return ok && ordered && cmp < 0
	},
	filter.OpLte: func(v any, ok bool, c filter.Clause) bool {
		cmp, ordered := compare(v, c.Value())
		return ok && ordered && cmp <= 0
	},
	filter.OpGt: func(v any, ok bool, c filter.Clause) bool {
		cmp, ordered := compare(v, c.Value())
		return ok && ordered && cmp > 0
	},
	filter.OpGte: func(v any, ok bool, c filter.Clause) bool {
		cmp, ordered := compare(v, c.Value())
		return ok && ordered && cmp >= 0
	},
	filter.OpBeginsWith: func(v any, ok bool, c filter.Clause) bool {
		s, isStr := v.(string)
		return ok && isStr && strings.HasPrefix(s, operandString(c.Value()))
	},
	filter.OpContains: func(v any, ok bool, c filter.Clause) bool {
		if !ok {
			return false
		}
		if s, isStr := v.(string); isStr {
			sub, subIsStr := c.Value().(string)
			return subIsStr && strings.Contains(s, sub)
		}
		if list, isList := v.([]any); isList {
			for _, el := range list {
				if equal(el, c.Value()) {
					return true
				}
			}
		}
		return false
	},
	filter.OpBetween: func(v any, ok bool, c filter.Clause) bool {
		if !ok {
			return false
		}
		lo, hi := c.Bounds()
		cmpLo, okLo := compare(v, lo)
		cmpHi, okHi := compare(v, hi)
		return okLo && okHi && cmpLo >= 0 && cmpHi <= 0
	},
	filter.OpIn: func(v any, ok bool, c filter.Clause) bool {
		if !ok {
			return false
		}
		for _, candidate := range c.Values() {
			if equal(v, candidate) {
				return true
			}
		}
		return false
	},
	filter.OpExists: func(_ any, ok bool, _ filter.Clause) bool {
		return ok
	},
	filter.OpNotExists: func(_ any, ok bool, _ filter.Clause) bool {
		return !ok
	},
}

// compilePredicate folds the clauses into one record test.
func compilePredicate(f filter.Expression) func(map[string]any) bool {
	clauses := f.Clauses()
	return func(rec map[string]any) bool {
		for _, c := range clauses {
			fn, found := predicates[c.Op()]
			if !found {
				continue
			}
			v, present := lookup(rec, c.Field())
			if !fn(v, present, c) {
				return false
			}
		}
		return true
	}
}

// lookup resolves a dotted attribute path through nested maps.
func lookup(rec map[string]any, path string) (any, bool) {
	if v, ok := rec[path]; ok {
		return v, true
	}
	cur := rec
	parts := strings.Split(path, ".")
	for i, p := range parts {
		v, ok := cur[p]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		next, isMap := v.(map[string]any)
		if !isMap {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

// compare orders two numbers or two strings. ordered is false for any
// other pairing.
func compare(a, b any) (cmp int, ordered bool) {
	if af, ok := toFloat64(a); ok {
		bf, ok := toFloat64(b)
		if !ok {
			return 0, false
		}
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	}
	as, ok := a.(string)
	if !ok {
		return 0, false
	}
	bs, ok := b.(string)
	if !ok {
		return 0, false
	}
	return strings.Compare(as, bs), true
}

func equal(a, b any) bool {
	if cmp, ok := compare(a, b); ok {
		return cmp == 0
	}
	return reflect.DeepEqual(a, b)
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
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
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func operandString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
