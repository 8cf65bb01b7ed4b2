// Package query implements the query command: it asks a running clock server
// to render a time, or its own current time when none is given.
package query
