package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/myproject/myproject/internal/cli"
	"github.com/myproject/myproject/internal/conf"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args, conf.Environ(), os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
