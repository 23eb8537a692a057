// SPDX-License-Identifier: MIT

// Command linsolve solves, inverts and factors linear systems described in a
// YAML file (see internal/sysfile for the layout). Results are written as YAML
// on stdout; diagnostics go to stderr.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("linsolve failed")
		os.Exit(1)
	}
}
