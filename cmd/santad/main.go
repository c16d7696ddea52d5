// Command santad runs the bulletin-board daemon. It stores opaque blobs,
// enforces room lifecycle and chair authentication, and nothing else; all
// cryptography happens in the santa client.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cryptosanta/cryptosanta/internal/server"
	"github.com/cryptosanta/cryptosanta/pkg/room"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "santad",
		Usage: "bulletin board for the gift-exchange protocol",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: ":8080",
				Usage: "listen address",
			},
			&cli.DurationFlag{
				Name:  "ttl",
				Value: room.DefaultTTL,
				Usage: "room retention before expiry",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log every request",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := zerolog.InfoLevel
	if c.Bool("debug") {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := room.NewStore(c.Duration("ttl"), log)
	srv := server.New(c.String("addr"), store, log)
	return srv.Run(ctx)
}
