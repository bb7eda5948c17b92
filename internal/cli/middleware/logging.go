package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/pweiskircher/base-converter/internal/contracts"
	"github.com/pweiskircher/base-converter/internal/logging"
)

type Runner func(ctx context.Context) error

// WithCommandLog logs the start and outcome of a command run at debug level.
func WithCommandLog(command contracts.CommandName, log logging.Logger, next Runner) Runner {
	if next == nil {
		return nil
	}

	return func(ctx context.Context) error {
		start := time.Now()
		log.Debug().Str("command", string(command)).Msg("command started")

		err := next(ctx)

		// Failures are already printed as the command diagnostic.
		event := log.Debug()
		if err != nil {
			event = event.Err(err)
		}
		event.Str("command", string(command)).Dur("elapsed", time.Since(start)).Msg("command finished")
		return err
	}
}

// WithRecover turns a panic inside next into an error.
func WithRecover(command contracts.CommandName, next Runner) Runner {
	if next == nil {
		return nil
	}

	return func(ctx context.Context) (runErr error) {
		defer func() {
			if r := recover(); r != nil {
				runErr = fmt.Errorf("command %s panicked: %v", command, r)
			}
		}()
		return next(ctx)
	}
}
