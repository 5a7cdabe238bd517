package attendance

// TrackerEntry is one clock-in/clock-out punch pair. Either side may be empty.
type TrackerEntry struct {
	ClockIn  string `json:"clockIn,omitempty"`
	ClockOut string `json:"clockOut,omitempty"`
}

// HasPunch reports whether the entry carries at least one usable side.
func (t TrackerEntry) HasPunch() bool {
	return t.ClockIn != "" || t.ClockOut != ""
}

// RawRecord is an attendance document as stored. Several raw records may exist
// for the same employee and calendar day.
type RawRecord struct {
	ID              string
	EmployeeID      string
	FirstName       string
	Date            string
	Shift           string
	Tracker         []TrackerEntry
	Remarks         string
	RemarksEditedAt string
}

// GroupKey identifies one person-day. All fields are normalized.
type GroupKey struct {
	EmployeeID string
	FirstName  string
	Date       string
}

// GroupedRecord accumulates every raw record sharing a GroupKey during a
// single aggregation pass. It is never persisted.
type GroupedRecord struct {
	Key             GroupKey
	EmployeeID      string
	FirstName       string
	Date            string
	Shift           string
	Tracker         []TrackerEntry
	Remarks         string
	RemarksEditedAt string

	// IDs of the raw records merged into this group, in arrival order
	SourceIDs []string
}

type Status string

const (
	StatusOnTime  Status = "On time"
	StatusLate    Status = "Late"
	StatusUnknown Status = "Unknown"
)

type Presence string

const (
	PresencePresent Presence = "Present"
	PresenceAbsent  Presence = "Absent"
)

// PlaceholderDuration marks a duration that could not be computed.
const PlaceholderDuration = "--:--:--"

// Summary is a GroupedRecord plus the fields derived from its tracker list.
type Summary struct {
	GroupedRecord

	FirstClockIn  string
	LastClockOut  string
	TotalHours    string
	TotalDuration string
	Status        Status
	Present       Presence
}
