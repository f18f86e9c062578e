package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		slog.Error("planner-cli failed", "error", err)
		os.Exit(1)
	}
}
