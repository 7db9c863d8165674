package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/hashbeam/sqrl/pkg/sqrl"
)

type enhashCmd struct {
	Key string `arg:"" help:"The key to derive from, as base58 text."`
}

func (cmd *enhashCmd) Run(_ *kong.Context) error {
	var key sqrl.Key
	if err := key.UnmarshalText([]byte(cmd.Key)); err != nil {
		return err
	}

	derived, err := sqrl.EnHash(key[:])
	if err != nil {
		return err
	}

	fmt.Println(derived)

	return nil
}
