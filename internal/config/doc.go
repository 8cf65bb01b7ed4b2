// Package config defines the settings shared by the berlin-clock binaries and
// provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the gRPC server address, the per-call timeout, the
// colored output switch and the log level. Environment variables override
// values read from the file.
package config
