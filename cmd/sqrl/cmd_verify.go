package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/hashbeam/sqrl/pkg/sqrl"
)

type verifyCmd struct {
	PublicKey string `arg:"" help:"The signer's public key, as base58 text."`
	Signature string `arg:"" help:"The detached signature, as base58 text."`
	Message   string `arg:"" default:"-" help:"The path to the message, or - for stdin."`
}

func (cmd *verifyCmd) Run(_ *kong.Context) error {
	var public sqrl.Key
	if err := public.UnmarshalText([]byte(cmd.PublicKey)); err != nil {
		return err
	}

	var sig sqrl.Signature
	if err := sig.UnmarshalText([]byte(cmd.Signature)); err != nil {
		return err
	}

	message, err := readMessage(cmd.Message)
	if err != nil {
		return err
	}

	if err := sqrl.Verify(&sig, message, public); err != nil {
		return err
	}

	fmt.Println("ok")

	return nil
}
