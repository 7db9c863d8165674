package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/hashbeam/sqrl/pkg/sqrl"
)

type newIdentityCmd struct {
	Output     string        `arg:"" type:"path" help:"The output path for the sealed identity."`
	LogN       uint          `default:"9" help:"The enscrypt memory-cost exponent."`
	Iterations int           `default:"16" help:"The minimum number of enscrypt rounds."`
	Time       time.Duration `default:"5s" help:"The minimum time to spend stretching the passphrase."`
}

func (cmd *newIdentityCmd) Run(_ *kong.Context) error {
	gen := sqrl.NewKeyGen()

	// The rescue code is the owner's only durable backup of the identity.
	rescueCode, err := gen.RescueCode()
	if err != nil {
		return err
	}

	iuk, err := gen.NewIdentityUnlockKey()
	if err != nil {
		return err
	}

	passphrase, err := askPassphrase("Enter passphrase: ")
	if err != nil {
		return err
	}

	sealed, err := sealIdentity(iuk, passphrase, cmd.LogN, cmd.Iterations, cmd.Time)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cmd.Output, sealed, 0o600); err != nil {
		return err
	}

	fmt.Printf("rescue code:       %s\n", rescueCode)
	fmt.Printf("identity lock key: %s\n", gen.IdentityLockKey(iuk))

	return nil
}
