package models

import "time"

// Field limits enforced during normalization. URLs longer than MaxURLLen
// or titles longer than MaxTitleLen are cut, not rejected.
const (
	MaxTitleLen      = 500
	MaxCompanyLen    = 500
	MaxLocationLen   = 500
	MaxURLLen        = 1000
	MaxShortFieldLen = 200
)

// Job is the normalized posting emitted in the output document. URL is
// the dedup key and is unique within one result batch.
type Job struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	URL         string     `json:"url"`
	Description string     `json:"description"`
	Salary      string     `json:"salary"`
	JobType     string     `json:"job_type"`
	PostedAt    string     `json:"posted_at"`
	PostedTime  *time.Time `json:"posted_time,omitempty"`
	RoleSlug    string     `json:"role_slug"`
	Source      string     `json:"source"`
}

// Result is the single JSON document written to stdout.
type Result struct {
	Success   bool   `json:"success"`
	Keyword   string `json:"keyword"`
	Timestamp string `json:"timestamp"`
	TotalJobs int    `json:"total_jobs"`
	Jobs      []Job  `json:"jobs"`
}

// ErrorResult replaces Result on fatal failure; the process exits non-zero.
type ErrorResult struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}
