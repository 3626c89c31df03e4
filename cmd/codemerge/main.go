package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/codemerge/internal/cli"
	"github.com/arthur-debert/codemerge/pkg/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := cli.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		ui.WriteError(os.Stderr, ui.FormatAuto, err)
		os.Exit(1)
	}
}
