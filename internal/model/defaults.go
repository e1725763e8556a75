package model

import "time"

// Shared defaults used by the web, terminal and command-line binaries.
const (
	DefaultBaseURL          = "http://127.0.0.1:8042"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultPageLength       = 25
	DefaultFetchConcurrency = 4
	DefaultFetchStrategy    = "sequential"
)
