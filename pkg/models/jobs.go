package models

import "time"

// RunSummary aggregates counters for one background job invocation.
type RunSummary struct {
	Job             string
	UsersChecked    int
	SkippedOffHours int
	SkippedNoInputs int
	ItemsProduced   int
	SkippedExisting int
	Errors          int
	Elapsed         time.Duration
}
