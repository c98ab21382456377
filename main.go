package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/lakshaymaurya-felt/wintune/cmd"
)

// Populated via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)

	// A cancel signal mid-run aborts the pass with a one-line notice.
	// Primitives are not interruptible once started, so there is no
	// graceful unwind to attempt.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		fmt.Println("\nInterrupted by user.")
		os.Exit(1)
	}()

	interactive, err := cmd.Execute()
	if interactive {
		cmd.Pause()
	}
	if err != nil {
		os.Exit(1)
	}
}
