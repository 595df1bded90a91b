package domain

import "testing"

func TestCanTransitionReport(t *testing.T) {
	tests := []struct {
		name    string
		current ReportStatus
		next    ReportStatus
		want    bool
	}{
		{"new to in progress", ReportStatusNew, ReportStatusInProgress, true},
		{"new to resolved", ReportStatusNew, ReportStatusResolved, true},
		{"in progress to resolved", ReportStatusInProgress, ReportStatusResolved, true},
		{"in progress back to new", ReportStatusInProgress, ReportStatusNew, false},
		{"resolved is terminal", ReportStatusResolved, ReportStatusInProgress, false},
		{"resolved to new", ReportStatusResolved, ReportStatusNew, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransitionReport(tt.current, tt.next); got != tt.want {
				t.Errorf("CanTransitionReport(%q, %q) = %v, want %v", tt.current, tt.next, got, tt.want)
			}
		})
	}
}
