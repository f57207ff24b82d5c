package queue

import "errors"

var (
	// ErrJobNotFound is returned when no job with the given id exists, either
	// because it was never enqueued or because its record expired.
	ErrJobNotFound = errors.New("job not found")

	// ErrNoJob is returned by Dequeue when no job arrived within the poll timeout.
	ErrNoJob = errors.New("no job available")

	ErrEncodingPayload = errors.New("error encoding job payload")
	ErrDecodingJob     = errors.New("error decoding job record")
	ErrRedis           = errors.New("redis error")
)
