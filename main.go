package main

import cmd "github.com/ekaya-inc/genie-spaces/cmd/genie"

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	cmd.Version = Version
	cmd.Execute()
}
