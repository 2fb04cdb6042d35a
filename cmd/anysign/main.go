package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/anyproto/any-sign/cmd/anysign/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		if errors.Is(err, commands.ErrSignatureMismatch) {
			os.Exit(1)
		}
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}
