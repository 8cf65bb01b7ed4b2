// Package watch renders the Berlin Clock for the current time, either once or
// continuously on every tick of a clockwork time source.
package watch
