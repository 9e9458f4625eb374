package server

import (
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/craftctl/internal/observability"
	"github.com/danmuck/craftctl/internal/protocol"
)

// conn owns one accepted socket, its receive buffer, and its phase. A
// single goroutine drives it, so no locking is needed anywhere below.
type conn struct {
	sock    net.Conn
	phase   Phase
	framer  protocol.Framer
	handler *Handler
	logger  zerolog.Logger
}

// handleConn runs one connection to completion.
func (s *Service) handleConn(nc net.Conn) {
	defer nc.Close()
	defer s.untrackConn(nc)

	remote := nc.RemoteAddr().String()
	logger := log.With().Str("remote", remote).Logger()
	active := s.clientCount.Add(1)
	observability.RecordConnectionOpened()
	logger.Info().Int64("active", active).Msg("connection opened")
	defer func() {
		remaining := s.clientCount.Add(-1)
		observability.RecordConnectionClosed()
		logger.Info().Int64("active", remaining).Msg("connection closed")
	}()

	c := &conn{
		sock:    nc,
		phase:   PhaseHandshake,
		handler: s.handler,
		logger:  logger,
	}
	if err := c.run(); err != nil {
		observability.RecordProtocolError()
		logger.Error().
			Err(err).
			Str("phase", c.phase.String()).
			Msg("connection error")
	}
}

// run is the connection's read loop. It suspends only on socket reads
// and writes; everything between is synchronous.
func (c *conn) run() error {
	buf := make([]byte, 1024)
	for {
		n, err := c.sock.Read(buf)
		if n > 0 {
			c.logger.Debug().Int("bytes", n).Msg("received data")
			observability.RecordBytesRead(n)
			c.framer.Push(buf[:n])
			done, derr := c.drainFrames()
			if derr != nil {
				return derr
			}
			if done {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.logger.Debug().Msg("connection closed by peer")
				return nil
			}
			return fmt.Errorf("socket read: %w", err)
		}
	}
}

// drainFrames dispatches every complete frame currently buffered. done
// reports that the handler asked to close after its writes flushed.
func (c *conn) drainFrames() (done bool, err error) {
	for {
		fr, ok, err := c.framer.Next()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}

		c.logger.Debug().
			Int32("packet_id", fr.ID).
			Str("phase", c.phase.String()).
			Int("payload_bytes", len(fr.Payload)).
			Msg("processing packet")
		observability.RecordFrame(c.phase.String())

		res, err := c.handler.Handle(c.phase, fr.ID, fr.Payload, c.logger)
		if err != nil {
			return false, err
		}
		c.phase = res.Phase
		for _, out := range res.Out {
			if _, err := c.sock.Write(out); err != nil {
				return false, fmt.Errorf("socket write: %w", err)
			}
		}
		if res.CloseAfterWrite {
			return true, nil
		}
	}
}
