// Command berlin-clock renders times as Berlin Clock lamp rows.
package main

import "github.com/oshokin/berlin-clock/cmd/berlin-clock/cmd"

func main() {
	cmd.Execute()
}
