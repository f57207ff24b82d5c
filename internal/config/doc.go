// Package config loads the settings shared by the finbank server and worker.
//
// Values come from environment variables, command-line flags, an optional
// JSON file and built-in defaults, in that order of priority. The merged
// result is normalized and validated once at startup by
// [GetStructuredConfig]; a process that gets an error must not start.
package config
