package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Interval is one window tagged with the identity of the slot it belongs to.
type Interval struct {
	ID     uuid.UUID
	Window TimeWindow
}

// Conflict describes a candidate window colliding with another interval.
type Conflict struct {
	CandidateStart time.Time
	ExistingStart  time.Time
}

func (c *Conflict) Err() *BusinessRuleError {
	return NewBusinessRuleError(
		"cannot create a time slot at %s that overlaps with an existing one at %s",
		c.CandidateStart.UTC().Format(time.RFC3339),
		c.ExistingStart.UTC().Format(time.RFC3339),
	)
}

// FindSlotConflict compares a single candidate window against a barber's
// persisted slots. excludeID lets an update ignore the slot's own prior
// version; pass uuid.Nil otherwise.
func FindSlotConflict(existing []Interval, candidate TimeWindow, excludeID uuid.UUID) *Conflict {
	for _, in := range existing {
		if excludeID != uuid.Nil && in.ID == excludeID {
			continue
		}
		if candidate.Overlaps(in.Window) {
			return &Conflict{CandidateStart: candidate.Start, ExistingStart: in.Window.Start}
		}
	}
	return nil
}

type sweepEvent struct {
	at        time.Time
	isStart   bool
	candidate bool
	id        uuid.UUID
	start     time.Time
}

// FindBatchConflict sweeps over the union of a barber's existing slots and a
// batch of proposed candidates and returns the first conflict involving a
// candidate, or nil. End events at a timestamp fire before start events at the
// same timestamp, so windows that merely touch never conflict. Existing slots
// overlapping only each other are not reported. O(n log n) in the total
// interval count.
func FindBatchConflict(existing, candidates []Interval) *Conflict {
	events := make([]sweepEvent, 0, 2*(len(existing)+len(candidates)))
	add := func(in Interval, candidate bool) {
		events = append(events,
			sweepEvent{at: in.Window.Start, isStart: true, candidate: candidate, id: in.ID, start: in.Window.Start},
			sweepEvent{at: in.Window.End(), isStart: false, candidate: candidate, id: in.ID, start: in.Window.Start},
		)
	}
	for _, in := range existing {
		add(in, false)
	}
	for _, in := range candidates {
		add(in, true)
	}

	sort.Slice(events, func(i, j int) bool {
		if !events[i].at.Equal(events[j].at) {
			return events[i].at.Before(events[j].at)
		}
		return !events[i].isStart && events[j].isStart
	})

	type activeInterval struct {
		start     time.Time
		candidate bool
	}
	active := make(map[uuid.UUID]activeInterval)

	for _, ev := range events {
		if !ev.isStart {
			delete(active, ev.id)
			continue
		}
		for id, other := range active {
			if id == ev.id {
				continue
			}
			if !ev.candidate && !other.candidate {
				continue
			}
			if ev.candidate {
				return &Conflict{CandidateStart: ev.start, ExistingStart: other.start}
			}
			return &Conflict{CandidateStart: other.start, ExistingStart: ev.start}
		}
		active[ev.id] = activeInterval{start: ev.start, candidate: ev.candidate}
	}
	return nil
}
