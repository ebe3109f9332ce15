package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/sosocrosswalk/soso/internal/cli"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(soso.ExitPanic)
		}
	}()

	if os.Getenv("SOSO_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(soso.ExitCodeForError(err))
	}
}
