// Command berlin-clock-server serves Berlin Clock conversions over gRPC.
package main

import "github.com/oshokin/berlin-clock/cmd/berlin-clock-server/cmd"

func main() {
	cmd.Execute()
}
