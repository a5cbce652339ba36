package filter

import (
	"testing"
)

func TestNewClause_Comparisons(t *testing.T) {
	for _, op := range []Operator{OpEq, OpNe, OpLt, OpLte, OpGt, OpGte, OpBeginsWith, OpContains} {
		c, ok := NewClause("age", op, 30.0)
		if !ok {
			t.Errorf("%s: expected clause", op)
			continue
		}
		if c.Field() != "age" || c.Op() != op || c.Value() != 30.0 {
			t.Errorf("%s: got %v", op, c)
		}
	}
}

func TestNewClause_Between(t *testing.T) {
	tests := []struct {
		name    string
		operand any
		ok      bool
	}{
		{"pair", []any{20.0, 30.0}, true},
		{"typed pair", []int{20, 30}, true},
		{"single", []any{20.0}, false},
		{"triple", []any{1.0, 2.0, 3.0}, false},
		{"scalar", 20.0, false},
		{"string", "20,30", false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := NewClause("age", OpBetween, tt.operand)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			lo, hi := c.Bounds()
			if lo == nil || hi == nil {
				t.Errorf("bounds = %v, %v", lo, hi)
			}
		})
	}
}

func TestNewClause_In(t *testing.T) {
	if _, ok := NewClause("status", OpIn, []any{"a", "b"}); !ok {
		t.Error("list operand should resolve")
	}
	if _, ok := NewClause("status", OpIn, []string{"a"}); !ok {
		t.Error("typed list operand should resolve")
	}
	if _, ok := NewClause("status", OpIn, "a"); ok {
		t.Error("scalar operand should be skipped")
	}
	if _, ok := NewClause("status", OpIn, []any{}); ok {
		t.Error("empty list should be skipped")
	}
}

func TestNewClause_Existence(t *testing.T) {
	tests := []struct {
		operand any
		ok      bool
	}{
		{true, true},
		{false, false},
		{nil, false},
		{1.0, true},
		{0.0, false},
		{"yes", true},
		{"", false},
	}
	for _, op := range []Operator{OpExists, OpNotExists} {
		for _, tt := range tests {
			if _, ok := NewClause("email", op, tt.operand); ok != tt.ok {
				t.Errorf("%s(%v): ok = %v, want %v", op, tt.operand, ok, tt.ok)
			}
		}
	}
}

func TestNewClause_UnknownOperatorAndEmptyField(t *testing.T) {
	if _, ok := NewClause("age", Operator("like"), "x"); ok {
		t.Error("unknown operator should be skipped")
	}
	if _, ok := NewClause("", OpEq, "x"); ok {
		t.Error("empty field should be skipped")
	}
}

func TestParse_Empty(t *testing.T) {
	if !Parse(nil).IsEmpty() {
		t.Error("nil map should be empty")
	}
	if !Parse(map[string]any{}).IsEmpty() {
		t.Error("empty map should be empty")
	}
}

func TestParse_SimpleEquality(t *testing.T) {
	e := Parse(map[string]any{"status": "active", "age": 30.0})
	if e.Len() != 2 {
		t.Fatalf("expected 2 clauses, got %d", e.Len())
	}
	for _, c := range e.Clauses() {
		if c.Op() != OpEq {
			t.Errorf("clause %v: expected eq", c)
		}
	}
}

func TestParse_Extended(t *testing.T) {
	e := Parse(map[string]any{
		"status": map[string]any{"eq": "active"},
		"age":    map[string]any{"gte": 30.0, "lt": 40.0},
	})
	want := []struct {
		field string
		op    Operator
	}{
		{"age", OpGte},
		{"age", OpLt},
		{"status", OpEq},
	}
	if e.Len() != len(want) {
		t.Fatalf("expected %d clauses, got %d", len(want), e.Len())
	}
	for i, c := range e.Clauses() {
		if c.Field() != want[i].field || c.Op() != want[i].op {
			t.Errorf("clause %d = %v, want %s %s", i, c, want[i].field, want[i].op)
		}
	}
}

func TestParse_Deterministic(t *testing.T) {
	raw := map[string]any{
		"a": map[string]any{"eq": 1.0, "ne": 2.0, "gt": 0.0},
		"b": map[string]any{"exists": true},
		"c": "x",
		"d": map[string]any{"in": []any{"p", "q"}},
	}
	first := Parse(raw).Clauses()
	for i := 0; i < 20; i++ {
		again := Parse(raw).Clauses()
		if len(again) != len(first) {
			t.Fatalf("length changed: %d vs %d", len(again), len(first))
		}
		for j := range first {
			if first[j].String() != again[j].String() {
				t.Fatalf("run %d clause %d: %v vs %v", i, j, first[j], again[j])
			}
		}
	}
}

func TestParse_MalformedBetweenDropped(t *testing.T) {
	e := Parse(map[string]any{"age": map[string]any{"between": []any{20.0}}})
	if !e.IsEmpty() {
		t.Errorf("expected empty expression, got %v", e.Clauses())
	}

	e = Parse(map[string]any{
		"age":    map[string]any{"between": []any{20.0}},
		"status": map[string]any{"eq": "active"},
	})
	if e.Len() != 1 || e.Clauses()[0].Field() != "status" {
		t.Errorf("expected only the status clause, got %v", e.Clauses())
	}
}

func TestOperator_IsValid(t *testing.T) {
	for _, op := range Operators {
		if !op.IsValid() {
			t.Errorf("%s should be valid", op)
		}
	}
	if Operator("like").IsValid() {
		t.Error("like should be invalid")
	}
}

func TestClause_String(t *testing.T) {
	c, _ := NewClause("age", OpBetween, []any{1, 2})
	if got := c.String(); got != "age between [1 2]" {
		t.Errorf("String() = %q", got)
	}
	c, _ = NewClause("email", OpExists, true)
	if got := c.String(); got != "email exists" {
		t.Errorf("String() = %q", got)
	}
}
