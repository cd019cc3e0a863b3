package domain

import "errors"

// EntryStatus represents the billing state of a time entry.
type EntryStatus string

const (
	StatusUnbilled EntryStatus = "unbilled"
	StatusBilled   EntryStatus = "billed"
)

var ErrEntryNotFound = errors.New("time entry not found")
var ErrUnknownClient = errors.New("unknown client")
var ErrInvalidHours = errors.New("hours must be greater than 0 and at most 24")

// IsValid reports whether s is one of the known entry statuses.
func (s EntryStatus) IsValid() bool {
	return s == StatusUnbilled || s == StatusBilled
}

// TimeEntry is the unit of billable work in the ledger. Once created, only
// Status may change; all other fields are immutable.
type TimeEntry struct {
	ID          string      `json:"id" bson:"id"`
	ClientID    string      `json:"client_id" bson:"client_id"`
	Date        string      `json:"date" bson:"date"` // YYYY-MM-DD, caller-supplied
	Hours       float64     `json:"hours" bson:"hours"`
	Description string      `json:"description" bson:"description"`
	Status      EntryStatus `json:"status" bson:"status"`
	// CreatedAt is a monotonically assigned unix-millisecond timestamp used
	// as the tiebreaker when ordering entries that share a date.
	CreatedAt int64 `json:"created_at" bson:"created_at"`
}

// Hours is the per-client aggregate bucket: total hours by billing status.
type Hours struct {
	Billed   float64 `json:"billed"`
	Unbilled float64 `json:"unbilled"`
}
