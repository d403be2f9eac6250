package http

import (
	"errors"
	"net"

	"github.com/rs/zerolog"
)

// Serve handles one connection at a time until l is closed.
func Serve(l net.Listener, h *TransactionHandler, logger zerolog.Logger) error {
	for {
		conn, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				logger.Info().Msg("listener closed")
				return nil
			}

			logger.Error().Err(err).Msg("error accepting connection")
			continue
		}

		logger.Debug().Str("remote", conn.RemoteAddr().String()).Msg("accepted connection")

		if err := h.Handle(conn, conn.RemoteAddr().String()); err != nil {
			logger.Error().Err(err).Msg("transaction abandoned")
		}

		if err := conn.Close(); err != nil {
			logger.Debug().Err(err).Msg("error closing connection")
		}
	}
}
