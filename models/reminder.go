package models

import "time"

type ReminderType string

const (
	ReminderMedicine    ReminderType = "medicine"
	ReminderAppointment ReminderType = "appointment"
	ReminderVaccination ReminderType = "vaccination"
	ReminderWater       ReminderType = "water"
	ReminderCustom      ReminderType = "custom"
)

type RepeatInterval string

const (
	RepeatNone    RepeatInterval = "none"
	RepeatDaily   RepeatInterval = "daily"
	RepeatWeekly  RepeatInterval = "weekly"
	RepeatMonthly RepeatInterval = "monthly"
)

// Reminder has two states: active and completed. ToggleComplete flips
// between them; nothing else transitions a reminder. Repeat is descriptive
// metadata only; no scheduler acts on it.
type Reminder struct {
	ID          int64          `json:"id"` // creation time in unix millis
	CreatedAt   time.Time      `json:"createdAt"`
	Completed   bool           `json:"completed"`
	Type        ReminderType   `json:"type" validate:"oneof=medicine appointment vaccination water custom"`
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description"`
	Time        string         `json:"time" validate:"omitempty,datetime=15:04"`
	Date        string         `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Repeat      RepeatInterval `json:"repeat" validate:"oneof=none daily weekly monthly"`
}

func (r *Reminder) Validate() error {
	return validate.Struct(r)
}

// ReminderPatch carries a partial update; nil fields are left untouched.
type ReminderPatch struct {
	Type        *ReminderType   `json:"type" validate:"omitempty,oneof=medicine appointment vaccination water custom"`
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Time        *string         `json:"time" validate:"omitempty,datetime=15:04"`
	Date        *string         `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Repeat      *RepeatInterval `json:"repeat" validate:"omitempty,oneof=none daily weekly monthly"`
	Completed   *bool           `json:"completed"`
}

func (p *ReminderPatch) Validate() error {
	return validate.Struct(p)
}
