package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/hashbeam/sqrl/pkg/sqrl"
)

type signCmd struct {
	Identity string `arg:"" help:"The path to the sealed identity."`
	Message  string `arg:"" default:"-" help:"The path to the message, or - for stdin."`
}

func (cmd *signCmd) Run(_ *kong.Context) error {
	iuk, err := unlockIdentity(cmd.Identity)
	if err != nil {
		return err
	}

	message, err := readMessage(cmd.Message)
	if err != nil {
		return err
	}

	// Sign with the keypair seeded by the identity master key.
	imk := sqrl.NewKeyGen().IdentityMasterKey(iuk)
	public, secret := sqrl.KeypairFromSeed(imk)
	sig := sqrl.Sign(message, secret, public)

	fmt.Printf("public key: %s\n", public)
	fmt.Printf("signature:  %s\n", sig)

	return nil
}
