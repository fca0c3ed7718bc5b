package models

import "time"

// SiteStats is the derived aggregate surfaced on the public stats endpoint.
// The counters are simulated growth figures, not raw stored values.
type SiteStats struct {
	Users       int64     `json:"users"`
	Countries   int       `json:"countries"`
	Industries  int       `json:"industries"`
	AdSpend     int64     `json:"ad_spend"`
	LastUpdated time.Time `json:"last_updated"`
}
