// Command trident searches file names, file contents and git commit
// history under a directory tree and merges the results into one
// deterministically ordered report.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/trident-labs/trident-cli/internal/adapters/driving/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
