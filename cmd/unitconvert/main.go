// Package main provides the CLI entrypoint for unitconvert.
//
// unitconvert converts values between units of one category:
//   - distance: m, km, cm, mm, in, ft, yd, mi
//   - mass: mg, g, kg, t, oz, lb, st
//   - temperature: °C, °F, K
//
// Values are given either as flags (convert), as a free-text expression
// such as "10C -> F" (expression), or in an interactive prompt.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"unitconvert/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Execute(ctx, os.Args[1:], cli.IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	})

	stop()
	os.Exit(code)
}
