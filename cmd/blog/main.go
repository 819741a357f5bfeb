package main

import (
	"context"
	"fmt"
	"os"

	"portfolio-blog/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = ""

func main() {
	if err := cli.NewRootCommand(getVersion()).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func getVersion() string {
	if version != "" {
		return version
	}
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}
