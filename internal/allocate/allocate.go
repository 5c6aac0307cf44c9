// Package allocate distributes an integer budget across weighted categories
// using the Largest Remainder Method. It is used for spreading study units
// across syllabus domains and for sizing per-domain quiz question counts.
package allocate

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrInvalidWeight is returned when a category weight is negative,
	// NaN, or infinite.
	ErrInvalidWeight = errors.New("allocate: invalid weight")

	// ErrInfeasible is returned when the per-category minimums cannot be
	// honored within the total budget.
	ErrInfeasible = errors.New("allocate: infeasible allocation")
)

// Item is one category competing for units.
type Item struct {
	Key     string  // unique category identifier
	Weight  float64 // relative weight, >= 0
	Minimum int     // units this category must receive, >= 0
}

// Request describes a full allocation problem.
// Item order is significant: ties in fractional remainder are broken by
// original position, so identical requests always produce identical results.
type Request struct {
	Items      []Item
	TotalUnits int
}

// Result maps a category key to its allocated unit count.
type Result map[string]int

// Total returns the sum of all allocated units.
func (r Result) Total() int {
	sum := 0
	for _, n := range r {
		sum += n
	}
	return sum
}

// Split computes integer allocations so that the result totals exactly
// req.TotalUnits and each category receives the closest integer
// approximation of its proportional share achievable under its minimum.
//
// Split is a pure function: it reads nothing but the request and identical
// requests yield identical results.
func Split(req Request) (Result, error) {
	if req.TotalUnits < 0 {
		return nil, fmt.Errorf("%w: total units %d is negative", ErrInfeasible, req.TotalUnits)
	}
	sumWeight := 0.0
	sumMin := 0
	for _, it := range req.Items {
		if it.Weight < 0 || math.IsNaN(it.Weight) || math.IsInf(it.Weight, 0) {
			return nil, fmt.Errorf("%w: category %q has weight %v", ErrInvalidWeight, it.Key, it.Weight)
		}
		if it.Minimum < 0 {
			return nil, fmt.Errorf("%w: category %q has negative minimum %d", ErrInvalidWeight, it.Key, it.Minimum)
		}
		sumWeight += it.Weight
		sumMin += it.Minimum
	}
	if sumMin > req.TotalUnits {
		return nil, fmt.Errorf("%w: minimums require %d units but only %d available", ErrInfeasible, sumMin, req.TotalUnits)
	}

	result := make(Result, len(req.Items))
	if len(req.Items) == 0 {
		return result, nil
	}

	// Floor each ideal share, clamped up to the category minimum.
	floors := make([]int, len(req.Items))
	remainders := make([]float64, len(req.Items))
	sumFloor := 0
	for i, it := range req.Items {
		share := 0.0
		if sumWeight > 0 {
			share = float64(req.TotalUnits) * it.Weight / sumWeight
		}
		fl := int(math.Floor(share))
		remainders[i] = share - float64(fl)
		if fl < it.Minimum {
			fl = it.Minimum
		}
		floors[i] = fl
		sumFloor += fl
	}

	switch {
	case sumFloor > req.TotalUnits:
		if err := reduceSurplus(req.Items, floors, sumFloor-req.TotalUnits); err != nil {
			return nil, err
		}
	case sumFloor < req.TotalUnits:
		distributeDeficit(req.Items, floors, remainders, req.TotalUnits-sumFloor)
	}

	for i, it := range req.Items {
		result[it.Key] = floors[i]
	}
	return result, nil
}

// reduceSurplus trims units from the lightest categories first, never taking
// a category below its declared minimum. Ties on weight give up units from
// the later-registered category first.
func reduceSurplus(items []Item, floors []int, surplus int) error {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if items[ia].Weight != items[ib].Weight {
			return items[ia].Weight < items[ib].Weight
		}
		return ia > ib
	})

	for surplus > 0 {
		trimmed := false
		for _, i := range order {
			if surplus == 0 {
				break
			}
			if floors[i] > items[i].Minimum {
				floors[i]--
				surplus--
				trimmed = true
			}
		}
		if !trimmed {
			return fmt.Errorf("%w: %d surplus units cannot be reduced without violating minimums", ErrInfeasible, surplus)
		}
	}
	return nil
}

// distributeDeficit hands leftover units to the categories with the largest
// fractional remainders, one unit per pass, ties broken by original input
// order. The ranking cycles when the deficit exceeds the category count
// (which happens when all weights are zero and only minimums were floored).
func distributeDeficit(items []Item, floors []int, remainders []float64, deficit int) {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})

	for deficit > 0 {
		for _, i := range order {
			if deficit == 0 {
				break
			}
			floors[i]++
			deficit--
		}
	}
}
