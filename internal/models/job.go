// internal/models/job.go
package models

import "time"

// JobState is the lifecycle state of a generation job.
type JobState string

const (
	JobStatePending    JobState = "pending"
	JobStateGenerating JobState = "generating"
	JobStateReady      JobState = "ready"
	JobStateFailed     JobState = "failed"
)

// Terminal reports whether the state is write-once final.
func (s JobState) Terminal() bool {
	return s == JobStateReady || s == JobStateFailed
}

// JobError is the caller-visible error payload of a failed job.
type JobError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Job is the tracked unit of work for one generation request.
//
// Invariant: exactly one of Artifact/Error is populated, and only once the
// job has reached a terminal state.
type Job struct {
	ID        string    `json:"id"`
	State     JobState  `json:"state"`
	Prompt    string    `json:"prompt"`
	Requester string    `json:"requester,omitempty"`
	Artifact  *Artifact `json:"artifact,omitempty"`
	Error     *JobError `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
