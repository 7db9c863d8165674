package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hashbeam/sqrl/pkg/sqrl"
)

type showIdentityCmd struct {
	Identity string `arg:"" help:"The path to the sealed identity."`
	Recover  bool   `help:"Also print the identity unlock key."`
}

func (cmd *showIdentityCmd) Run(_ *kong.Context) error {
	iuk, err := unlockIdentity(cmd.Identity)
	if err != nil {
		return err
	}

	gen := sqrl.NewKeyGen()
	imk := gen.IdentityMasterKey(iuk)

	fmt.Printf("identity lock key: %s\n", gen.IdentityLockKey(iuk))
	fmt.Printf("local key:         %s\n", gen.LocalKey(imk))

	if cmd.Recover {
		fmt.Printf("identity unlock key: %s\n", iuk)
	}

	return nil
}

// unlockIdentity reads a sealed identity and recovers its unlock key with a
// prompted passphrase.
func unlockIdentity(path string) (sqrl.Key, error) {
	sealed, err := os.ReadFile(path)
	if err != nil {
		return sqrl.Key{}, err
	}

	passphrase, err := askPassphrase("Enter passphrase: ")
	if err != nil {
		return sqrl.Key{}, err
	}

	return openIdentity(sealed, passphrase)
}
