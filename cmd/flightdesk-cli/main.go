package main

import "github.com/nfrund/flightdesk/cmd/flightdesk-cli/cmd"

func main() {
	cmd.Execute()
}
