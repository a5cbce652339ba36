package request

import (
	"testing"

	"github.com/kailas-cloud/dynoscan/internal/domain/scan/cursor"
	"github.com/kailas-cloud/dynoscan/internal/domain/scan/filter"
)

func TestNew_Limit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero", 0, 0},
		{"negative", -5, 0},
		{"in range", 25, 25},
		{"max", MaxLimit, MaxLimit},
		{"above max", 1000, MaxLimit},
		{"one", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(filter.Expression{}, nil, tt.limit)
			if r.Limit() != tt.want {
				t.Errorf("Limit() = %d, want %d", r.Limit(), tt.want)
			}
		})
	}
}

func TestNew_PassesCursorThrough(t *testing.T) {
	c := cursor.Cursor{"PK": "USER#1", "SK": "PROFILE"}
	r := New(filter.Expression{}, c, 10)
	if r.StartKey()["PK"] != "USER#1" || r.StartKey()["SK"] != "PROFILE" {
		t.Errorf("StartKey() = %v", r.StartKey())
	}
	if !r.Filter().IsEmpty() {
		t.Error("expected empty filter")
	}
}
