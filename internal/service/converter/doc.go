// Package converter implements the convert command: it renders times given as
// arguments or read line by line from an input stream.
package converter
