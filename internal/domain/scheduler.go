package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleAppointment books the slot for the user and returns the new
// appointment together with the booked version of the slot. The first failing
// step short-circuits and its error propagates untouched.
func ScheduleAppointment(userID uuid.UUID, slot TimeSlot, note string, now time.Time) (Appointment, TimeSlot, error) {
	if err := slot.EnsureUpcoming(now); err != nil {
		return Appointment{}, TimeSlot{}, err
	}
	booked, err := slot.Book()
	if err != nil {
		return Appointment{}, TimeSlot{}, err
	}
	appt := Appointment{
		UserID:     userID,
		BarberID:   booked.BarberID,
		TimeSlotID: booked.ID,
		Note:       note,
	}
	return appt, booked, nil
}

// CancelAppointment cancels the appointment and frees its slot, provided the
// cancellation window has not passed. The caller must persist both returned
// versions as one logical unit.
func CancelAppointment(appt Appointment, slot TimeSlot, policy BusinessHoursPolicy, now time.Time) (Appointment, TimeSlot, error) {
	if appt.IsCancelled {
		return Appointment{}, TimeSlot{}, NewBusinessRuleError("appointment is already cancelled")
	}
	if !policy.Cancellable(slot.StartTime, now) {
		return Appointment{}, TimeSlot{}, NewBusinessRuleError("cannot cancel appointment")
	}
	freed, err := slot.Unbook()
	if err != nil {
		return Appointment{}, TimeSlot{}, err
	}
	cancelled, err := appt.Cancel()
	if err != nil {
		return Appointment{}, TimeSlot{}, err
	}
	return cancelled, freed, nil
}
