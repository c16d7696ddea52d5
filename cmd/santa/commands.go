package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/cryptosanta/cryptosanta/internal/pool"
	"github.com/cryptosanta/cryptosanta/pkg/client"
	"github.com/cryptosanta/cryptosanta/pkg/elgamal"
	"github.com/cryptosanta/cryptosanta/pkg/group"
	"github.com/cryptosanta/cryptosanta/pkg/math/arith"
	"github.com/cryptosanta/cryptosanta/pkg/protocol"
	"github.com/urfave/cli/v2"
)

func loadKeyfile(c *cli.Context) (*protocol.Keyfile, error) {
	data, err := os.ReadFile(c.String("keyfile"))
	if err != nil {
		return nil, fmt.Errorf("read keyfile: %w", err)
	}
	k := &protocol.Keyfile{}
	if err := k.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return k, nil
}

func saveKeyfile(c *cli.Context, k *protocol.Keyfile) error {
	data, err := k.MarshalBinary()
	if err != nil {
		return err
	}
	return os.WriteFile(c.String("keyfile"), data, 0o600)
}

func board(c *cli.Context) *client.Client {
	return client.New(c.String("board"))
}

func createRoomCommand() *cli.Command {
	return &cli.Command{
		Name:  "create-room",
		Usage: "open a room as chair, generating a session keypair",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "token", Required: true, Usage: "chair secret for the sort step"},
		},
		Action: func(c *cli.Context) error {
			params := group.Default()
			sessionPub, sessionSec, err := elgamal.KeyGen(rand.Reader, params)
			if err != nil {
				return err
			}
			roomID, err := board(c).CreateRoom(c.Context, params,
				arith.NatDecimal(sessionPub.Y()), c.String("token"))
			if err != nil {
				return err
			}
			if err := saveKeyfile(c, protocol.NewKeyfile(roomID, params, sessionSec)); err != nil {
				return err
			}
			fmt.Println(roomID)
			return nil
		},
	}
}

func registerCommand() *cli.Command {
	return &cli.Command{
		Name:      "register",
		Usage:     "generate a keypair and register it in a room",
		ArgsUsage: "ROOM_ID",
		Action: func(c *cli.Context) error {
			roomID := c.Args().First()
			if roomID == "" {
				return fmt.Errorf("missing ROOM_ID argument")
			}
			view, err := board(c).Room(c.Context, roomID)
			if err != nil {
				return err
			}
			if err := view.Params.Validate(); err != nil {
				return fmt.Errorf("room parameters rejected: %w", err)
			}
			pk, sk, err := elgamal.KeyGen(rand.Reader, view.Params)
			if err != nil {
				return err
			}
			sessionKey, err := arith.NatFromDecimal(view.SessionPublicKey)
			if err != nil {
				return err
			}
			blob, err := protocol.Register(elgamal.NewPublicKey(view.Params, sessionKey), pk)
			if err != nil {
				return err
			}
			if err := board(c).Register(c.Context, roomID, blob); err != nil {
				return err
			}
			if err := saveKeyfile(c, protocol.NewKeyfile(roomID, view.Params, sk)); err != nil {
				return err
			}
			fmt.Println("registered; public key", arith.NatDecimal(pk.Y()))
			return nil
		},
	}
}

func sortCommand() *cli.Command {
	return &cli.Command{
		Name:  "sort",
		Usage: "decrypt all registrations, sort, and publish (chair only)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "token", Required: true, Usage: "chair secret"},
		},
		Action: func(c *cli.Context) error {
			k, err := loadKeyfile(c)
			if err != nil {
				return err
			}
			blobs, err := board(c).Participants(c.Context, k.RoomID)
			if err != nil {
				return err
			}
			sorted, err := protocol.SortRegistrations(k.Secret, blobs)
			if err != nil {
				return err
			}
			if err := board(c).PublishSortedKeys(c.Context, k.RoomID, c.String("token"), sorted); err != nil {
				return err
			}
			fmt.Printf("published %d sorted keys\n", len(sorted))
			return nil
		},
	}
}

func assignCommand() *cli.Command {
	return &cli.Command{
		Name:  "assign",
		Usage: "compute giver and receiver from the published list",
		Action: func(c *cli.Context) error {
			k, err := loadKeyfile(c)
			if err != nil {
				return err
			}
			view, err := board(c).Room(c.Context, k.RoomID)
			if err != nil {
				return err
			}
			edges, err := protocol.Assign(view.SortedKeys, k.Secret.PublicKey)
			if err != nil {
				return err
			}
			fmt.Println("gives to you:", arith.NatDecimal(edges.Giver))
			fmt.Println("you give to: ", arith.NatDecimal(edges.Receiver))
			return nil
		},
	}
}

func sendAddressCommand() *cli.Command {
	return &cli.Command{
		Name:  "send-address",
		Usage: "encrypt an address for your receiver and post it",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "address", Required: true, Usage: "shipping address payload"},
		},
		Action: func(c *cli.Context) error {
			k, err := loadKeyfile(c)
			if err != nil {
				return err
			}
			view, err := board(c).Room(c.Context, k.RoomID)
			if err != nil {
				return err
			}
			edges, err := protocol.Assign(view.SortedKeys, k.Secret.PublicKey)
			if err != nil {
				return err
			}
			blob, err := protocol.SendAddress(k.Group, edges.Receiver, []byte(c.String("address")))
			if err != nil {
				return err
			}
			if err := board(c).PostMessage(c.Context, k.RoomID, blob); err != nil {
				return err
			}
			fmt.Println("address posted")
			return nil
		},
	}
}

func findAddressCommand() *cli.Command {
	return &cli.Command{
		Name:  "find-address",
		Usage: "scan all posted blobs for the one addressed to you",
		Action: func(c *cli.Context) error {
			k, err := loadKeyfile(c)
			if err != nil {
				return err
			}
			blobs, err := board(c).Messages(c.Context, k.RoomID)
			if err != nil {
				return err
			}
			p := pool.NewPool(0)
			defer p.TearDown()
			payload, err := protocol.FindAddress(p, k.Secret, blobs)
			if err != nil {
				return err
			}
			fmt.Println(string(payload))
			return nil
		},
	}
}
