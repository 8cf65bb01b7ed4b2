// Package berlinclock contains the core conversion of a time of day into the
// lamp rows of the Berlin Clock.
//
// It defines Time (a validated hour, minute and second triple) and ClockState
// (the five lamp rows derived from a Time). Both are immutable values and are
// safe to share between goroutines. Convert glues parsing, row computation and
// rendering together.
package berlinclock
