package dynamo

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"

	"github.com/kailas-cloud/dynoscan/internal/domain/scan/filter"
)

// conditionFunc builds the native condition for one clause.
type conditionFunc func(name expression.NameBuilder, c filter.Clause) expression.ConditionBuilder

// conditions maps every supported operator to its builder.
var conditions = map[filter.Operator]conditionFunc{
	filter.OpEq: func(n expression.NameBuilder, c filter.Clause) expression.ConditionBuilder {
		return n.Equal(expression.Value(c.Value()))
	},
	filter.OpNe: func(n expression.NameBuilder, c filter.Clause) expression.ConditionBuilder {
		return n.NotEqual(expression.Value(c.Value()))
	},
	filter.OpLt: func(n expression.NameBuilder, c filter.Clause) expression.ConditionBuilder {
		return n.LessThan(expression.Value(c.Value()))
	},
	filter.OpLte: func(n expression.NameBuilder, c filter.Clause) expression.ConditionBuilder {
		return n.LessThanEqual(expression.Value(c.Value()))
	},
	filter.OpGt: func(n expression.NameBuilder, c filter.Clause) expression.ConditionBuilder {
		return n.GreaterThan(expression.Value(c.Value()))
	},
	filter.OpGte: func(n expression.NameBuilder, c filter.Clause) expression.ConditionBuilder {
		return n.GreaterThanEqual(expression.Value(c.Value()))
	},
	filter.OpBeginsWith: func(n expression.NameBuilder, c filter.Clause) expression.ConditionBuilder {
		return n.BeginsWith(stringOperand(c.Value()))
	},
	filter.OpContains: func(n expression.NameBuilder, c filter.Clause) expression.ConditionBuilder {
		return n.Contains(stringOperand(c.Value()))
	},
	filter.OpBetween: func(n expression.NameBuilder, c filter.Clause) expression.ConditionBuilder {
		lo, hi := c.Bounds()
		return n.Between(expression.Value(lo), expression.Value(hi))
	},
	filter.OpIn: func(n expression.NameBuilder, c filter.Clause) expression.ConditionBuilder {
		values := c.Values()
		rest := make([]expression.OperandBuilder, 0, len(values)-1)
		for _, v := range values[1:] {
			rest = append(rest, expression.Value(v))
		}
		return n.In(expression.Value(values[0]), rest...)
	},
	filter.OpExists: func(n expression.NameBuilder, _ filter.Clause) expression.ConditionBuilder {
		return n.AttributeExists()
	},
	filter.OpNotExists: func(n expression.NameBuilder, _ filter.Clause) expression.ConditionBuilder {
		return n.AttributeNotExists()
	},
}

// compileFilter folds the clauses the expression builder can express into one
// AND condition. ok is false when nothing remains for the builder.
func compileFilter(f filter.Expression) (cond expression.ConditionBuilder, ok bool) {
	built := make([]expression.ConditionBuilder, 0, f.Len())
	for _, c := range f.Clauses() {
		if isTypedContains(c) {
			continue
		}
		fn, found := conditions[c.Op()]
		if !found {
			continue
		}
		built = append(built, fn(expression.Name(c.Field()), c))
	}

	switch len(built) {
	case 0:
		return expression.ConditionBuilder{}, false
	case 1:
		return built[0], true
	default:
		return expression.And(built[0], built[1], built[2:]...), true
	}
}

// isTypedContains reports a contains clause with a non-string operand, e.g.
// membership of a number in a number set. The expression builder types
// contains operands as strings, so these are rendered by applyFilter.
func isTypedContains(c filter.Clause) bool {
	if c.Op() != filter.OpContains {
		return false
	}
	_, isStr := c.Value().(string)
	return !isStr
}

func typedContains(f filter.Expression) []filter.Clause {
	var out []filter.Clause
	for _, c := range f.Clauses() {
		if isTypedContains(c) {
			out = append(out, c)
		}
	}
	return out
}

// stringOperand formats operands of begins_with, which the expression
// builder only accepts as strings.
func stringOperand(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
