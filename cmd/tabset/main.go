package main

import "github.com/alchemmist/tabset/internal/cli"

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit)
	cli.Execute()
}
