package config

import "time"

// JobsConfig controls background job cadences and the business-hours gate.
// Cron specs are evaluated in server time; the per-user business-hours and
// digest-hour checks always use the user's own timezone.
type JobsConfig struct {
	// Cron specs (robfig/cron standard 5-field format).
	SignalScanSpec      string
	DebriefPromptSpec   string
	CommitmentSweepSpec string
	WeeklyDigestSpec    string

	// Business-hours window, user-local. [StartHour, EndHour).
	BusinessHoursStart int
	BusinessHoursEnd   int

	// DigestHour is the user-local hour the weekly digest fires on Monday.
	DigestHour int

	// DedupWindow is the notification dedup lookback.
	DedupWindow time.Duration
}

// DefaultJobsConfig returns the built-in job cadences.
func DefaultJobsConfig() *JobsConfig {
	return &JobsConfig{
		SignalScanSpec:      "*/15 * * * *",
		DebriefPromptSpec:   "*/15 * * * *",
		CommitmentSweepSpec: "0 * * * *",
		// Hourly tick; the job itself decides per user whether it is
		// Monday DigestHour in that user's timezone.
		WeeklyDigestSpec: "0 * * * *",

		BusinessHoursStart: 8,
		BusinessHoursEnd:   18,
		DigestHour:         7,
		DedupWindow:        time.Hour,
	}
}

// LoadJobsFromEnv reads JOBS_* environment variables.
func LoadJobsFromEnv() *JobsConfig {
	d := DefaultJobsConfig()
	return &JobsConfig{
		SignalScanSpec:      envString("JOBS_SIGNAL_SCAN_SPEC", d.SignalScanSpec),
		DebriefPromptSpec:   envString("JOBS_DEBRIEF_PROMPT_SPEC", d.DebriefPromptSpec),
		CommitmentSweepSpec: envString("JOBS_COMMITMENT_SWEEP_SPEC", d.CommitmentSweepSpec),
		WeeklyDigestSpec:    envString("JOBS_WEEKLY_DIGEST_SPEC", d.WeeklyDigestSpec),
		BusinessHoursStart:  envInt("JOBS_BUSINESS_HOURS_START", d.BusinessHoursStart),
		BusinessHoursEnd:    envInt("JOBS_BUSINESS_HOURS_END", d.BusinessHoursEnd),
		DigestHour:          envInt("JOBS_DIGEST_HOUR", d.DigestHour),
		DedupWindow:         envDuration("JOBS_DEDUP_WINDOW", d.DedupWindow),
	}
}

// ServerConfig controls the HTTP/WebSocket boundary.
type ServerConfig struct {
	HTTPPort       string
	WSWriteTimeout time.Duration
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		HTTPPort:       "8080",
		WSWriteTimeout: 10 * time.Second,
	}
}

// LoadServerFromEnv reads server environment variables.
func LoadServerFromEnv() *ServerConfig {
	d := DefaultServerConfig()
	return &ServerConfig{
		HTTPPort:       envString("HTTP_PORT", d.HTTPPort),
		WSWriteTimeout: envDuration("WS_WRITE_TIMEOUT", d.WSWriteTimeout),
	}
}
