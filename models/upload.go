package models

import "github.com/google/uuid"

// ImageFile is a profile image received from the client.
type ImageFile struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ImageUploadPayload is the job payload of a scheduled profile image upload.
// FileData is base64 encoded on the wire.
type ImageUploadPayload struct {
	FileData    []byte    `json:"file_data"`
	ImageType   ImageType `json:"image_type"`
	ContentType string    `json:"content_type"`
	UserID      uuid.UUID `json:"user_id"`
}

// ImageUploadResult is stored as the job result of a successful upload.
type ImageUploadResult struct {
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	ImageType    ImageType `json:"image_type"`
	PublicID     string    `json:"public_id"`
}

// UploadState is the client-facing state of an image upload.
type UploadState string

const (
	UploadStatePending   UploadState = "pending"
	UploadStateCompleted UploadState = "completed"
	UploadStateFailed    UploadState = "failed"
)

// UploadStatus is the body of the upload status endpoint. Which fields are
// set depends on Status.
type UploadStatus struct {
	Status       UploadState `json:"status"`
	TaskID       string      `json:"task_id,omitempty"`
	ImageURL     string      `json:"image_url,omitempty"`
	ThumbnailURL *string     `json:"thumbnail_url,omitempty"`
	ImageType    ImageType   `json:"image_type,omitempty"`
	Error        string      `json:"error,omitempty"`
}

// UploadScheduledResponse is returned when an upload job is accepted.
type UploadScheduledResponse struct {
	Message string      `json:"message"`
	TaskID  string      `json:"task_id"`
	Status  UploadState `json:"status"`
}
