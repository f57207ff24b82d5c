// Package queue is the background job queue shared by the API server and the
// worker process.
//
// Jobs live in Redis: a list holds the ids of pending jobs and one hash per
// job keeps its kind, owner, payload, status and outcome. The API enqueues
// jobs and polls their state, workers block on the list and record progress.
// Finished jobs expire after the configured result TTL.
//
// The package also provides [RetryPolicy], the bounded exponential backoff
// used by workers to rerun failed jobs.
package queue
