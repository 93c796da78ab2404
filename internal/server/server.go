// Package server runs the accept loop and supervises one goroutine per
// connection, grounded on junjiewwang-perf-analysis's cmd/cli/cmd/serve.go
// graceful-shutdown pattern (signal.Notify + tracked goroutines + listener
// close), adapted from an HTTP server's Shutdown to a raw net.Listener.
package server

import (
	"context"
	"errors"
	"net"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Sheeplet1/rsheets/internal/dispatch"
	"github.com/Sheeplet1/rsheets/internal/transport"
)

// Server owns the listener and the dispatcher, and supervises one
// goroutine per accepted connection via an errgroup.
type Server struct {
	manager  transport.Manager
	dispatch *dispatch.Dispatcher
	log      zerolog.Logger
}

func New(manager transport.Manager, d *dispatch.Dispatcher, log zerolog.Logger) *Server {
	return &Server{manager: manager, dispatch: d, log: log}
}

// Listen opens a TCP listener on addr. Split out from Run so the caller can
// log the bound address (useful when addr requests an ephemeral port).
func Listen(addr string) (net.Listener, error) {
	return net.Listen("tcp", addr)
}

// Run accepts connections until ctx is canceled, spawning a worker goroutine
// per connection. Each worker processes its client's commands sequentially;
// all workers share the engine behind d. Run returns once every in-flight
// connection goroutine has exited.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		return s.manager.Close()
	})

	for {
		reader, writer, closer, err := s.manager.Accept()
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			if errors.Is(err, net.ErrClosed) {
				break
			}
			s.log.Error().Err(err).Msg("accept failed")
			continue
		}

		connID := uuid.New()
		connLog := s.log.With().Str("conn_id", connID.String()).Logger()
		connLog.Info().Msg("connection accepted")

		g.Go(func() error {
			defer closer.Close()
			s.serveConn(reader, writer, connLog)
			connLog.Info().Msg("connection closed")
			return nil
		})
	}

	return g.Wait()
}

// serveConn loops reading command lines from reader and writing replies to
// writer until the connection ends (EOF or a read error), mirroring
// original_source's start_server per-connection loop.
func (s *Server) serveConn(reader transport.Reader, writer transport.Writer, log zerolog.Logger) {
	for {
		line, err := reader.ReadLine()
		if err != nil {
			return
		}
		log.Debug().Str("command", line).Msg("dispatching command")
		reply := s.dispatch.Handle(line)
		if err := writer.WriteReply(reply); err != nil {
			log.Debug().Err(err).Msg("write failed, dropping connection")
			return
		}
	}
}
