package main

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/hashbeam/sqrl/pkg/sqrl"
	"github.com/mr-tron/base58"
)

type enscryptCmd struct {
	LogN       uint          `default:"9" help:"The memory-cost exponent."`
	Iterations int           `default:"16" help:"The minimum number of rounds."`
	Time       time.Duration `default:"0" help:"The minimum time to spend."`
	Salt       string        `help:"The salt as base58 text. Random if omitted."`
}

func (cmd *enscryptCmd) Run(_ *kong.Context) error {
	salt := make([]byte, sqrl.SaltSize)

	if cmd.Salt != "" {
		b, err := base58.Decode(cmd.Salt)
		if err != nil {
			return err
		}

		salt = b
	} else if _, err := rand.Read(salt); err != nil {
		return err
	}

	passphrase, err := askPassphrase("Enter passphrase: ")
	if err != nil {
		return err
	}

	n, elapsed, key, err := sqrl.EnScrypt(passphrase, salt, cmd.LogN, cmd.Iterations, cmd.Time)
	if err != nil {
		return err
	}

	fmt.Printf("iterations: %d\n", n)
	fmt.Printf("elapsed:    %s\n", elapsed)
	fmt.Printf("salt:       %s\n", base58.Encode(salt))
	fmt.Printf("key:        %s\n", key)

	return nil
}
