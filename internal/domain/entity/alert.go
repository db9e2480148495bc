package entity

import "time"

// Alert is raised when a freshly fetched record crosses the deviation threshold.
type Alert struct {
	Record     DisplayRecord
	DetectedAt time.Time
}
