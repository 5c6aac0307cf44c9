package allocate

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestSplitExactTotal(t *testing.T) {
	tests := []struct {
		name  string
		req   Request
		want  Result
	}{
		{
			name: "three domains canonical",
			req: Request{
				Items: []Item{
					{Key: "a", Weight: 0.5, Minimum: 1},
					{Key: "b", Weight: 0.3, Minimum: 1},
					{Key: "c", Weight: 0.2, Minimum: 1},
				},
				TotalUnits: 56,
			},
			// ideal shares 28.0 / 16.8 / 11.2; the single leftover unit
			// goes to b (remainder 0.8)
			want: Result{"a": 28, "b": 17, "c": 11},
		},
		{
			name: "even split",
			req: Request{
				Items: []Item{
					{Key: "a", Weight: 1, Minimum: 1},
					{Key: "b", Weight: 1, Minimum: 1},
				},
				TotalUnits: 10,
			},
			want: Result{"a": 5, "b": 5},
		},
		{
			name: "tie broken by input order",
			req: Request{
				Items: []Item{
					{Key: "a", Weight: 1, Minimum: 0},
					{Key: "b", Weight: 1, Minimum: 0},
					{Key: "c", Weight: 1, Minimum: 0},
				},
				TotalUnits: 4,
			},
			// shares 1.333 each; a is first in input order so it wins
			// the leftover unit
			want: Result{"a": 2, "b": 1, "c": 1},
		},
		{
			name: "minimum lifts a tiny domain",
			req: Request{
				Items: []Item{
					{Key: "big", Weight: 0.99, Minimum: 1},
					{Key: "tiny", Weight: 0.01, Minimum: 1},
				},
				TotalUnits: 10,
			},
			want: Result{"big": 9, "tiny": 1},
		},
		{
			name: "zero weights fall back to minimums then order",
			req: Request{
				Items: []Item{
					{Key: "a", Weight: 0, Minimum: 1},
					{Key: "b", Weight: 0, Minimum: 1},
				},
				TotalUnits: 5,
			},
			want: Result{"a": 3, "b": 2},
		},
		{
			name:  "no items",
			req:   Request{TotalUnits: 0},
			want:  Result{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.req)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %v, want %v", got, tt.want)
			}
			if got.Total() != tt.req.TotalUnits {
				t.Errorf("Total() = %d, want %d", got.Total(), tt.req.TotalUnits)
			}
		})
	}
}

func TestSplitSurplusReduction(t *testing.T) {
	// Floors after minimum clamping exceed the budget. Lighter categories
	// sit at their minimums, so the heaviest one absorbs the cut.
	req := Request{
		Items: []Item{
			{Key: "a", Weight: 0.6, Minimum: 1},
			{Key: "b", Weight: 0.3, Minimum: 1},
			{Key: "c", Weight: 0.1, Minimum: 1},
			{Key: "d", Weight: 0.0, Minimum: 1},
		},
		TotalUnits: 4,
	}
	got, err := Split(req)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if got.Total() != 4 {
		t.Fatalf("Total() = %d, want 4", got.Total())
	}
	for _, it := range req.Items {
		if got[it.Key] < it.Minimum {
			t.Errorf("category %q got %d, below minimum %d", it.Key, got[it.Key], it.Minimum)
		}
	}
}

func TestSplitInfeasible(t *testing.T) {
	req := Request{
		Items: []Item{
			{Key: "a", Weight: 0.5, Minimum: 1},
			{Key: "b", Weight: 0.3, Minimum: 1},
			{Key: "c", Weight: 0.2, Minimum: 1},
		},
		TotalUnits: 2,
	}
	_, err := Split(req)
	if !errors.Is(err, ErrInfeasible) {
		t.Fatalf("Split() error = %v, want ErrInfeasible", err)
	}
}

func TestSplitInvalidWeight(t *testing.T) {
	for _, w := range []float64{-0.1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		req := Request{
			Items:      []Item{{Key: "a", Weight: w}},
			TotalUnits: 10,
		}
		if _, err := Split(req); !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("Split() with weight %v: error = %v, want ErrInvalidWeight", w, err)
		}
	}
}

func TestSplitNegativeMinimum(t *testing.T) {
	req := Request{
		Items:      []Item{{Key: "a", Weight: 1, Minimum: -1}},
		TotalUnits: 10,
	}
	if _, err := Split(req); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("Split() error = %v, want ErrInvalidWeight", err)
	}
}

func TestSplitDeterministic(t *testing.T) {
	req := Request{
		Items: []Item{
			{Key: "a", Weight: 0.26, Minimum: 1},
			{Key: "b", Weight: 0.26, Minimum: 1},
			{Key: "c", Weight: 0.24, Minimum: 1},
			{Key: "d", Weight: 0.24, Minimum: 1},
		},
		TotalUnits: 37,
	}
	first, err := Split(req)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	for i := 0; i < 50; i++ {
		again, err := Split(req)
		if err != nil {
			t.Fatalf("Split() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, again, first)
		}
	}
}

func TestSplitMonotonicInOwnWeight(t *testing.T) {
	base := Request{
		Items: []Item{
			{Key: "a", Weight: 0.2, Minimum: 1},
			{Key: "b", Weight: 0.5, Minimum: 1},
			{Key: "c", Weight: 0.3, Minimum: 1},
		},
		TotalUnits: 40,
	}
	prev := -1
	for _, w := range []float64{0.2, 0.4, 0.8, 1.6, 3.2} {
		req := base
		req.Items = append([]Item(nil), base.Items...)
		req.Items[0].Weight = w
		got, err := Split(req)
		if err != nil {
			t.Fatalf("Split() with weight %v: %v", w, err)
		}
		if got["a"] < prev {
			t.Errorf("allocation for a dropped from %d to %d when weight rose to %v", prev, got["a"], w)
		}
		prev = got["a"]
	}
}

func TestSplitMinimumsHonored(t *testing.T) {
	req := Request{
		Items: []Item{
			{Key: "a", Weight: 0.97, Minimum: 1},
			{Key: "b", Weight: 0.01, Minimum: 2},
			{Key: "c", Weight: 0.01, Minimum: 3},
			{Key: "d", Weight: 0.01, Minimum: 1},
		},
		TotalUnits: 12,
	}
	got, err := Split(req)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	for _, it := range req.Items {
		if got[it.Key] < it.Minimum {
			t.Errorf("category %q got %d, below minimum %d", it.Key, got[it.Key], it.Minimum)
		}
	}
	if got.Total() != 12 {
		t.Errorf("Total() = %d, want 12", got.Total())
	}
}
