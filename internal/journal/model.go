package journal

import (
	"encoding/json"
	"time"
)

// Entry is one parsed day block.
type Entry struct {
	// Date is midnight UTC of the block's DD.MM.YY token. A malformed token leaves
	// the zero time, which sorts before every real date.
	Date        time.Time     `json:"date"`
	Substances  *string       `json:"substances"`
	Medication  Medication    `json:"mType"`
	Routines    Routines      `json:"routines"`
	Sleep       SleepSchedule `json:"sleepSchedule"`
	Description *string       `json:"description"`
	Feelings    *string       `json:"feelings"`
}

// HasDate reports whether the date line produced a representable date.
func (e Entry) HasDate() bool {
	return !e.Date.IsZero()
}

// MedicationType is the kind recorded on the medication line.
type MedicationType string

const (
	// MedicationNone means the line was missing or unrecognized.
	MedicationNone MedicationType = ""
	// MedicationMTP marks an MTP dose.
	MedicationMTP MedicationType = "MTP"
	// MedicationMWO marks an MWO dose.
	MedicationMWO MedicationType = "MWO"
	// MedicationNo records an explicit "no".
	MedicationNo MedicationType = "No"
)

// Medication carries the optional dose amount alongside its type. Amount is only
// ever set when Type is MTP or MWO.
type Medication struct {
	Amount *int           `json:"amount"`
	Type   MedicationType `json:"type"`
}

func (t MedicationType) String() string {
	if t == MedicationNone {
		return "none"
	}
	return string(t)
}

// MarshalJSON encodes MedicationNone as null.
func (t MedicationType) MarshalJSON() ([]byte, error) {
	if t == MedicationNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(t))
}

// Routines are either all set or all nil.
type Routines struct {
	Morning *bool `json:"morning"`
	Work    *bool `json:"work"`
	Night   *bool `json:"night"`
}

// Complete reports whether the routine line had exactly three parts.
func (r Routines) Complete() bool {
	return r.Morning != nil && r.Work != nil && r.Night != nil
}

// SleepSchedule holds H:MM tokens. Morning is the time the user fell asleep and
// Night the time they woke up; downstream charts rely on that mapping.
type SleepSchedule struct {
	Morning *string `json:"morning"`
	Night   *string `json:"night"`
}
