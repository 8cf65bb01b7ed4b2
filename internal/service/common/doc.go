// Package common holds helpers shared by several services.
//
// It provides a lightweight gRPC client for the clock service with call
// timeouts, and utilities to detect the calling actor (hostname/username) and
// carry it in request metadata so the server can log who asked.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
