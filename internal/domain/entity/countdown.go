package entity

import "time"

// ClockState is the phase of the refresh countdown.
type ClockState int

const (
	ClockUnknown ClockState = iota
	ClockCounting
	ClockOverdue
)

func (s ClockState) String() string {
	switch s {
	case ClockCounting:
		return "counting"
	case ClockOverdue:
		return "overdue"
	default:
		return "unknown"
	}
}

func (s ClockState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Status is the backend refresh cycle as reported by the status endpoint.
type Status struct {
	LastUpdate *time.Time
	NextUpdate time.Time
}

// Countdown is recomputed on every clock tick. SecondsRemaining is 0 unless counting.
type Countdown struct {
	State            ClockState `json:"state"`
	LastUpdate       *time.Time `json:"lastUpdate,omitempty"`
	NextUpdate       time.Time  `json:"nextUpdate"`
	SecondsRemaining int64      `json:"secondsRemaining"`
	CheckedAt        time.Time  `json:"checkedAt"`
}
