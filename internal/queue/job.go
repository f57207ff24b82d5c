package queue

import (
	"encoding/json"
	"time"
)

// Status is the lifecycle state of a job.
type Status string

const (
	StatusPending  Status = "pending"
	StatusStarted  Status = "started"
	StatusRetrying Status = "retrying"
	StatusSuccess  Status = "success"
	StatusFailure  Status = "failure"
)

// IsFinished reports whether the job reached a terminal state.
func (s Status) IsFinished() bool {
	return s == StatusSuccess || s == StatusFailure
}

// Kind selects the handler a worker runs for a job.
type Kind string

const (
	KindUploadProfileImage Kind = "upload_profile_image"
	KindSendEmail          Kind = "send_email"
)

// Job is a unit of background work and its recorded outcome.
type Job struct {
	ID    string `json:"id"`
	Kind  Kind   `json:"kind"`
	Owner string `json:"owner"`

	Status   Status `json:"status"`
	Attempts int    `json:"attempts"`

	Payload json.RawMessage `json:"payload,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DecodePayload unmarshals the job payload into dst.
func (j Job) DecodePayload(dst any) error {
	return json.Unmarshal(j.Payload, dst)
}

// DecodeResult unmarshals the job result into dst.
func (j Job) DecodeResult(dst any) error {
	return json.Unmarshal(j.Result, dst)
}
