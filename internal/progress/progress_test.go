package progress

import "testing"

func TestOnTrackRatio(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want float64
	}{
		{"on pace", Snapshot{PeriodsElapsed: 3, TotalPeriods: 6, UnitsCompleted: 15, UnitsPlanned: 30}, 1.0},
		{"behind", Snapshot{PeriodsElapsed: 4, TotalPeriods: 8, UnitsCompleted: 5, UnitsPlanned: 20}, 0.5},
		{"ahead", Snapshot{PeriodsElapsed: 2, TotalPeriods: 8, UnitsCompleted: 10, UnitsPlanned: 20}, 2.0},
		{"nothing elapsed", Snapshot{PeriodsElapsed: 0, TotalPeriods: 8, UnitsCompleted: 0, UnitsPlanned: 20}, 1.0},
		{"no plan", Snapshot{PeriodsElapsed: 3, TotalPeriods: 6}, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snap.OnTrackRatio(); got != tt.want {
				t.Errorf("OnTrackRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}
