package model

// Slot statuses known to the upstream API. Any other value is passed
// through to the user verbatim.
const (
	StatusDefinite   = "Definite"
	StatusNotPlanned = "NotPlanned"
)

// Slot is one contiguous interval of the day with an outage status.
// Start and End are minutes from midnight; End may be 1440 ("24:00") at
// the full-day boundary.
type Slot struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Type  string `json:"type"`
}

// DaySchedule holds one day's ordered slot list.
type DaySchedule struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// GroupSchedule is the per-group payload. A nil day means the upstream
// document carried no data for it, which is distinct from an empty slot
// list (no planned outages).
type GroupSchedule struct {
	UpdatedOn string       `json:"updatedOn"`
	Today     *DaySchedule `json:"today"`
	Tomorrow  *DaySchedule `json:"tomorrow"`
}

// OutageDocument is one fetch result: group id ("3.1") -> schedule.
// Produced fresh on every fetch and discarded after rendering.
type OutageDocument map[string]GroupSchedule
