// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a console encoder writing to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - convenience functions (Debug, DebugKV, Info, InfoKV, WarnKV, ErrorKV).
//
// Commands and services carry the logger in their context, so the clock
// server, the watch loop and the CLI converter all log with their own name.
// The conversion core in internal/domain never logs.
package logger
