package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/term"
)

type cli struct {
	NewIdentity  newIdentityCmd  `cmd:"" help:"Generate a new identity and seal it under a passphrase."`
	ShowIdentity showIdentityCmd `cmd:"" help:"Unlock a sealed identity and show its public keys."`
	RescueCode   rescueCodeCmd   `cmd:"" help:"Generate a rescue code."`
	Enhash       enhashCmd       `cmd:"" help:"Derive a subsidiary key from a key."`
	Enscrypt     enscryptCmd     `cmd:"" help:"Stretch a passphrase into a key."`
	Sign         signCmd         `cmd:"" help:"Create a detached signature for a message."`
	Verify       verifyCmd       `cmd:"" help:"Verify a detached signature for a message."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func askPassphrase(prompt string) ([]byte, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	return term.ReadPassword(int(os.Stdin.Fd()))
}

// readMessage reads the contents of the given path, or of stdin for "-".
func readMessage(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}
