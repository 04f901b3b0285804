package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DailyPattern describes slot generation for one weekday. Times are "HH:MM"
// clock strings on the schedule's local day. A zero Interval steps by
// DurationMinutes, producing back-to-back slots.
type DailyPattern struct {
	DayOfWeek       int    // 0 = Sunday .. 6 = Saturday
	StartTime       string // "HH:MM"
	EndTime         string // "HH:MM"
	DurationMinutes int
	IntervalMinutes int
}

func (p DailyPattern) validate(path string) []FieldError {
	var fields []FieldError
	if p.DayOfWeek < 0 || p.DayOfWeek > 6 {
		fields = append(fields, FieldError{Path: path + ".dayOfWeek", Message: "must be between 0 (Sunday) and 6 (Saturday)"})
	}
	if _, _, err := parseClock(p.StartTime); err != nil {
		fields = append(fields, FieldError{Path: path + ".startTime", Message: err.Error()})
	}
	if _, _, err := parseClock(p.EndTime); err != nil {
		fields = append(fields, FieldError{Path: path + ".endTime", Message: err.Error()})
	}
	if p.DurationMinutes <= 0 {
		fields = append(fields, FieldError{Path: path + ".duration", Message: "must be a positive number of minutes"})
	}
	if p.IntervalMinutes < 0 {
		fields = append(fields, FieldError{Path: path + ".interval", Message: "must not be negative"})
	}
	return fields
}

func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("must be in HH:MM format")
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("must be in HH:MM format")
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("must be in HH:MM format")
	}
	return hour, minute, nil
}

// GenerateWeeklyWindows expands daily patterns into concrete candidate windows
// over every calendar day in [startDate, endDate]. For each day the first
// pattern matching its weekday applies; windows of DurationMinutes are emitted
// from the pattern's start time, stepping by the interval, while the window
// still ends at or before the pattern's end time.
func GenerateWeeklyWindows(startDate, endDate time.Time, patterns []DailyPattern) ([]TimeWindow, error) {
	if len(patterns) == 0 {
		return nil, NewValidationError(FieldError{Path: "dailySlots", Message: "at least one daily pattern is required"})
	}
	var fields []FieldError
	for i, p := range patterns {
		fields = append(fields, p.validate(fmt.Sprintf("dailySlots[%d]", i))...)
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields...)
	}
	if !endDate.After(startDate) {
		return nil, NewBusinessRuleError("end date must be after start date")
	}

	loc := startDate.Location()
	day := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, loc)
	last := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, loc)

	var out []TimeWindow
	for ; !day.After(last); day = day.AddDate(0, 0, 1) {
		p, ok := patternFor(patterns, day.Weekday())
		if !ok {
			continue
		}

		startHour, startMinute, _ := parseClock(p.StartTime)
		endHour, endMinute, _ := parseClock(p.EndTime)

		duration := time.Duration(p.DurationMinutes) * time.Minute
		interval := time.Duration(p.IntervalMinutes) * time.Minute
		if interval == 0 {
			interval = duration
		}

		cur := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMinute, 0, 0, loc)
		dayEnd := time.Date(day.Year(), day.Month(), day.Day(), endHour, endMinute, 0, 0, loc)

		for !cur.Add(duration).After(dayEnd) {
			out = append(out, TimeWindow{Start: cur.UTC(), DurationMinutes: p.DurationMinutes})
			cur = cur.Add(interval)
		}
	}

	if len(out) == 0 {
		return nil, NewBusinessRuleError("no valid time slots could be created with the provided schedule")
	}
	return out, nil
}

// First matching pattern wins; later patterns for the same weekday are ignored.
func patternFor(patterns []DailyPattern, weekday time.Weekday) (DailyPattern, bool) {
	for _, p := range patterns {
		if p.DayOfWeek == int(weekday) {
			return p, true
		}
	}
	return DailyPattern{}, false
}
