package main

import (
	shiplinecmd "github.com/shipline/shipline/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	shiplinecmd.SetVersionInfo(version, commit)
	shiplinecmd.Execute()
}
