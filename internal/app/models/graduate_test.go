package models

import (
	"testing"
	"time"
)

func TestCanTransitionToForwardChain(t *testing.T) {
	chain := []ApplicationStatus{
		StatusUnderReview,
		StatusInvitedForInterview,
		StatusInterviewed,
		StatusSighting,
		StatusServing,
	}

	for i := 0; i < len(chain)-1; i++ {
		if !chain[i].CanTransitionTo(chain[i+1]) {
			t.Fatalf("%s -> %s must be allowed", chain[i], chain[i+1])
		}
	}

	// Skipping a step is never allowed
	for i := 0; i < len(chain); i++ {
		for j := i + 2; j < len(chain); j++ {
			if chain[i].CanTransitionTo(chain[j]) {
				t.Fatalf("%s -> %s must be rejected", chain[i], chain[j])
			}
		}
	}

	// Moving backwards is never allowed
	for i := 1; i < len(chain); i++ {
		if chain[i].CanTransitionTo(chain[i-1]) {
			t.Fatalf("%s -> %s must be rejected", chain[i], chain[i-1])
		}
	}
}

func TestNotAcceptedReachableFromNonTerminalOnly(t *testing.T) {
	nonTerminal := []ApplicationStatus{
		StatusUnderReview, StatusInvitedForInterview, StatusInterviewed, StatusSighting,
	}
	for _, status := range nonTerminal {
		if !status.CanTransitionTo(StatusNotAccepted) {
			t.Fatalf("%s -> NOT_ACCEPTED must be allowed", status)
		}
	}

	for _, terminal := range []ApplicationStatus{StatusServing, StatusNotAccepted} {
		if !terminal.IsTerminal() {
			t.Fatalf("%s must be terminal", terminal)
		}
		for other := range statusTransitions {
			if terminal.CanTransitionTo(other) {
				t.Fatalf("%s -> %s must be rejected", terminal, other)
			}
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for status := range statusTransitions {
		if !status.IsValid() {
			t.Fatalf("%s must be valid", status)
		}
	}
	for _, bad := range []ApplicationStatus{"", "PROMOTED", "under_review"} {
		if bad.IsValid() {
			t.Fatalf("%q must be invalid", bad)
		}
	}
}

func TestServiceProgress(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	var p GraduateProfile
	if got := p.ServiceProgress(now); got != 0 {
		t.Fatalf("progress with no start date = %v, want 0", got)
	}

	cases := []struct {
		daysAgo  int
		min, max float64
	}{
		{0, 0, 0.01},
		{73, 19.9, 20.1},   // 73/365 = 20%
		{365, 100, 100},    // exactly one year
		{500, 100, 100},    // clamped past the year
	}
	for _, tc := range cases {
		started := now.AddDate(0, 0, -tc.daysAgo)
		p := GraduateProfile{ServiceStartedDate: &started}
		got := p.ServiceProgress(now)
		if got < tc.min || got > tc.max {
			t.Fatalf("progress after %d days = %v, want between %v and %v", tc.daysAgo, got, tc.min, tc.max)
		}
	}

	// A start date in the future reports zero, not a negative value
	future := now.AddDate(0, 0, 10)
	p = GraduateProfile{ServiceStartedDate: &future}
	if got := p.ServiceProgress(now); got != 0 {
		t.Fatalf("progress before start = %v, want 0", got)
	}
}
