package services

import "testing"

func TestCronToHuman(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected string
	}{
		{"weekly monday morning", "0 8 * * 1", "Weekly on Monday at 8:00 AM"},
		{"weekly sunday as seven", "30 17 * * 7", "Weekly on Sunday at 5:30 PM"},
		{"daily", "0 8 * * *", "Daily at 8:00 AM"},
		{"daily midnight", "0 0 * * *", "Daily at 12:00 AM"},
		{"daily noon", "15 12 * * *", "Daily at 12:15 PM"},
		{"specific day of month passes through", "0 8 1 * *", "0 8 1 * *"},
		{"specific month passes through", "0 8 * 6 *", "0 8 * 6 *"},
		{"stepped minute passes through", "*/15 8 * * 1", "*/15 8 * * 1"},
		{"out of range hour passes through", "0 25 * * 1", "0 25 * * 1"},
		{"unknown weekday token passes through", "0 8 * * MON", "0 8 * * MON"},
		{"wrong field count passes through", "0 8 * *", "0 8 * *"},
		{"empty expression passes through", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CronToHuman(tc.expr); got != tc.expected {
				t.Errorf("CronToHuman(%q) = %q, want %q", tc.expr, got, tc.expected)
			}
		})
	}
}
