package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewBusinessHoursPolicy(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		end     int
		window  time.Duration
		wantErr bool
	}{
		{name: "defaults", start: 9, end: 23, window: 4 * time.Hour},
		{name: "start out of range", start: -1, end: 23, window: 0, wantErr: true},
		{name: "end out of range", start: 9, end: 24, window: 0, wantErr: true},
		{name: "end before start", start: 18, end: 9, window: 0, wantErr: true},
		{name: "end equals start", start: 9, end: 9, window: 0, wantErr: true},
		{name: "negative window", start: 9, end: 23, window: -time.Hour, wantErr: true},
		{name: "zero window", start: 9, end: 23, window: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBusinessHoursPolicy(tt.start, tt.end, tt.window)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestWithinBusinessHours(t *testing.T) {
	policy := DefaultBusinessHoursPolicy()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		at      time.Time
		wantErr bool
	}{
		{name: "opening hour", at: day.Add(9 * time.Hour)},
		{name: "just before opening", at: day.Add(8*time.Hour + 59*time.Minute), wantErr: true},
		{name: "midday", at: day.Add(13*time.Hour + 30*time.Minute)},
		{name: "closing hour exactly", at: day.Add(23 * time.Hour)},
		{name: "one minute past closing", at: day.Add(23*time.Hour + time.Minute), wantErr: true},
		{name: "midnight", at: day, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.WithinBusinessHours(tt.at)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr = %v", err, tt.wantErr)
			}
			if err != nil {
				var berr *BusinessRuleError
				if !errors.As(err, &berr) {
					t.Fatalf("error = %T, want *BusinessRuleError", err)
				}
			}
		})
	}
}

func TestCancellable(t *testing.T) {
	policy := DefaultBusinessHoursPolicy()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{name: "well ahead", start: now.Add(5 * time.Hour), want: true},
		{name: "just inside window", start: now.Add(4*time.Hour + time.Minute), want: true},
		{name: "exactly at boundary", start: now.Add(4 * time.Hour), want: false},
		{name: "inside four hours", start: now.Add(time.Hour), want: false},
		{name: "already started", start: now.Add(-time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.Cancellable(tt.start, now); got != tt.want {
				t.Fatalf("Cancellable = %v, want %v", got, tt.want)
			}
		})
	}
}
