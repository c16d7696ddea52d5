// Command santa is the participant and chair CLI. Key material stays in a
// local keyfile; the board only ever receives ciphertext blobs and, after
// the chair's sort, the public key list.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "santa",
		Usage: "cryptographic gift-exchange client",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "board",
				Value: "http://localhost:8080",
				Usage: "bulletin board base URL",
			},
			&cli.StringFlag{
				Name:  "keyfile",
				Value: "santa.key",
				Usage: "path of the local key material",
			},
		},
		Commands: []*cli.Command{
			createRoomCommand(),
			registerCommand(),
			sortCommand(),
			assignCommand(),
			sendAddressCommand(),
			findAddressCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
