package dynoscan

// Filter is a fluent builder for the Filters map of a ScanRequest.
// Conditions on the same attribute merge; all conditions must hold.
type Filter struct {
	conds map[string]map[string]any
}

// NewFilter starts an empty filter.
func NewFilter() *Filter {
	return &Filter{conds: make(map[string]map[string]any)}
}

func (f *Filter) add(attr, op string, operand any) *Filter {
	m, ok := f.conds[attr]
	if !ok {
		m = make(map[string]any)
		f.conds[attr] = m
	}
	m[op] = operand
	return f
}

// Eq matches attr == v.
func (f *Filter) Eq(attr string, v any) *Filter { return f.add(attr, "eq", v) }

// Ne matches attr != v.
func (f *Filter) Ne(attr string, v any) *Filter { return f.add(attr, "ne", v) }

// Lt matches attr < v.
func (f *Filter) Lt(attr string, v any) *Filter { return f.add(attr, "lt", v) }

// Lte matches attr <= v.
func (f *Filter) Lte(attr string, v any) *Filter { return f.add(attr, "lte", v) }

// Gt matches attr > v.
func (f *Filter) Gt(attr string, v any) *Filter { return f.add(attr, "gt", v) }

// Gte matches attr >= v.
func (f *Filter) Gte(attr string, v any) *Filter { return f.add(attr, "gte", v) }

// BeginsWith matches string attributes starting with prefix.
func (f *Filter) BeginsWith(attr, prefix string) *Filter { return f.add(attr, "begins_with", prefix) }

// Contains matches a substring of a string attribute or an element of a list attribute.
func (f *Filter) Contains(attr string, v any) *Filter { return f.add(attr, "contains", v) }

// Between matches lo <= attr <= hi.
func (f *Filter) Between(attr string, lo, hi any) *Filter {
	return f.add(attr, "between", []any{lo, hi})
}

// In matches when attr equals any of values.
func (f *Filter) In(attr string, values ...any) *Filter { return f.add(attr, "in", values) }

// Exists matches records that have attr.
func (f *Filter) Exists(attr string) *Filter { return f.add(attr, "exists", true) }

// NotExists matches records without attr.
func (f *Filter) NotExists(attr string) *Filter { return f.add(attr, "not_exists", true) }

// Map returns the filter in ScanRequest.Filters form.
func (f *Filter) Map() map[string]any {
	out := make(map[string]any, len(f.conds))
	for attr, ops := range f.conds {
		cp := make(map[string]any, len(ops))
		for op, v := range ops {
			cp[op] = v
		}
		out[attr] = cp
	}
	return out
}
