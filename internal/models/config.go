package models

import "time"

// FetchConfig contains runtime options shared by fetch engines.
type FetchConfig struct {
	Visible  bool
	MaxPages int
	Retries  int
	Timeout  time.Duration
}
