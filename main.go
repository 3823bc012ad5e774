package main

import "github.com/mvalancy-mt/logitech-bcc950/cmd"

func main() {
	cmd.Execute()
}
