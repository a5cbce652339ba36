package filter

import (
	"fmt"
	"reflect"
	"sort"
)

// Operator names a comparison applied to one attribute.
type Operator string

// Supported operators.
const (
	OpEq         Operator = "eq"
	OpNe         Operator = "ne"
	OpLt         Operator = "lt"
	OpLte        Operator = "lte"
	OpGt         Operator = "gt"
	OpGte        Operator = "gte"
	OpBeginsWith Operator = "begins_with"
	OpContains   Operator = "contains"
	// OpBetween takes a [lo, hi] pair, both bounds inclusive.
	OpBetween Operator = "between"
	// OpIn takes a list; it matches when the attribute equals any element.
	OpIn        Operator = "in"
	OpExists    Operator = "exists"
	OpNotExists Operator = "not_exists"
)

// Operators lists every supported operator in a stable order.
var Operators = []Operator{
	OpEq, OpNe, OpLt, OpLte, OpGt, OpGte,
	OpBeginsWith, OpContains, OpBetween, OpIn, OpExists, OpNotExists,
}

// IsValid reports whether o is a supported operator.
func (o Operator) IsValid() bool {
	for _, op := range Operators {
		if op == o {
			return true
		}
	}
	return false
}

// Clause is one operator applied to one attribute.
type Clause struct {
	field  string
	op     Operator
	value  any
	values []any
}

// NewClause resolves a single operator against a field.
// ok is false when the clause must be skipped: unknown operator, a range or
// membership operand of the wrong shape, or a falsy existence flag.
func NewClause(field string, op Operator, operand any) (Clause, bool) {
	if field == "" {
		return Clause{}, false
	}

	switch op {
	case OpEq, OpNe, OpLt, OpLte, OpGt, OpGte, OpBeginsWith, OpContains:
		return Clause{field: field, op: op, value: operand}, true
	case OpBetween:
		list, ok := asList(operand)
		if !ok || len(list) != 2 {
			return Clause{}, false
		}
		return Clause{field: field, op: op, values: list}, true
	case OpIn:
		list, ok := asList(operand)
		if !ok || len(list) == 0 {
			return Clause{}, false
		}
		return Clause{field: field, op: op, values: list}, true
	case OpExists, OpNotExists:
		if !truthy(operand) {
			return Clause{}, false
		}
		return Clause{field: field, op: op}, true
	default:
		return Clause{}, false
	}
}

// Field returns the attribute name.
func (c Clause) Field() string { return c.field }

// Op returns the operator.
func (c Clause) Op() Operator { return c.op }

// Value returns the scalar operand of comparison operators.
func (c Clause) Value() any { return c.value }

// Values returns the list operand of in, or the [lo, hi] pair of between.
func (c Clause) Values() []any { return c.values }

// Bounds returns the inclusive range of a between clause.
func (c Clause) Bounds() (lo, hi any) {
	if len(c.values) != 2 {
		return nil, nil
	}
	return c.values[0], c.values[1]
}

func (c Clause) String() string {
	switch c.op {
	case OpBetween, OpIn:
		return fmt.Sprintf("%s %s %v", c.field, c.op, c.values)
	case OpExists, OpNotExists:
		return fmt.Sprintf("%s %s", c.field, c.op)
	default:
		return fmt.Sprintf("%s %s %v", c.field, c.op, c.value)
	}
}

// Expression is a flat conjunction of clauses.
type Expression struct {
	clauses []Clause
}

// NewExpression combines clauses with AND, preserving their order.
func NewExpression(clauses ...Clause) Expression {
	return Expression{clauses: clauses}
}

// Parse translates a raw filter map into an Expression.
//
// A field whose condition is an object is read as {operator: operand}; any
// other value is an equality literal. Clauses that cannot be resolved are
// dropped. Output is ordered by field, then operator, so equal inputs always
// yield equal expressions.
func Parse(raw map[string]any) Expression {
	if len(raw) == 0 {
		return Expression{}
	}

	fields := make([]string, 0, len(raw))
	for f := range raw {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var clauses []Clause
	for _, f := range fields {
		cond, ok := raw[f].(map[string]any)
		if !ok {
			if c, ok := NewClause(f, OpEq, raw[f]); ok {
				clauses = append(clauses, c)
			}
			continue
		}

		ops := make([]string, 0, len(cond))
		for op := range cond {
			ops = append(ops, op)
		}
		sort.Strings(ops)

		for _, op := range ops {
			if c, ok := NewClause(f, Operator(op), cond[op]); ok {
				clauses = append(clauses, c)
			}
		}
	}
	return Expression{clauses: clauses}
}

// Clauses returns the conjunction members.
func (e Expression) Clauses() []Clause { return e.clauses }

// Len returns the number of clauses.
func (e Expression) Len() int { return len(e.clauses) }

// IsEmpty reports whether the expression matches every record.
func (e Expression) IsEmpty() bool { return len(e.clauses) == 0 }

// asList accepts any slice or array operand.
func asList(v any) ([]any, bool) {
	if list, ok := v.([]any); ok {
		return list, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// truthy mirrors the usual JSON-ish notion of a set flag:
// false, zero, "", null and empty collections are unset.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	default:
		return true
	}
}
