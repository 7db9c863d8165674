package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/hashbeam/sqrl/pkg/sqrl"
)

type rescueCodeCmd struct{}

func (cmd *rescueCodeCmd) Run(_ *kong.Context) error {
	code, err := sqrl.NewKeyGen().RescueCode()
	if err != nil {
		return err
	}

	fmt.Println(code)

	return nil
}
