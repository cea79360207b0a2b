package main

import (
	"errors"
	"fmt"
	"os"

	pageerrors "github.com/alexisbeaulieu97/pagekit/pkg/errors"
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps command errors to process exit codes: 1 for a rejected
// signup, 2 for configuration problems and 3 for everything else.
func exitCode(err error) int {
	var (
		rejected   *pageerrors.RejectedError
		parseErr   *pageerrors.ParseError
		invalidCfg *pageerrors.ValidationError
	)
	switch {
	case err == nil:
		return 0
	case errors.As(err, &rejected):
		return 1
	case errors.As(err, &parseErr), errors.As(err, &invalidCfg):
		return 2
	default:
		return 3
	}
}
