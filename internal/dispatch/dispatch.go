// Package dispatch parses a client's command line, assigns it a timestamp,
// drives the engine, and formats a reply.
package dispatch

import (
	"strings"

	"github.com/Sheeplet1/rsheets/internal/engine"
	"github.com/Sheeplet1/rsheets/internal/transport"
)

// Dispatcher is the command-line-to-engine-call bridge, grounded on
// original_source's lib.rs dispatch loop and commands/get.rs / set.rs
// argument validation (the exact error strings below are reproduced
// verbatim from that source).
type Dispatcher struct {
	engine *engine.Engine
	clock  *Clock
}

func New(e *engine.Engine) *Dispatcher {
	return &Dispatcher{engine: e, clock: NewClock()}
}

// Handle parses and executes a single command line, returning the reply to
// send back (a zero-value Reply for a successful set, which Writer.WriteReply
// treats as "no line").
func (d *Dispatcher) Handle(line string) transport.Reply {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return transport.ErrorReply("Invalid command")
	}

	switch tokens[0] {
	case "get":
		return d.handleGet(tokens)
	case "set":
		return d.handleSet(tokens)
	default:
		return transport.ErrorReply("Invalid command")
	}
}

func (d *Dispatcher) handleGet(tokens []string) transport.Reply {
	if len(tokens) != 2 {
		return transport.ErrorReply("Invalid number of arguments for get")
	}
	cell := tokens[1]
	v, err := d.engine.Get(cell)
	if err != nil {
		return transport.ErrorReply(err.Error())
	}
	return transport.ValueReply(cell, v.Render())
}

func (d *Dispatcher) handleSet(tokens []string) transport.Reply {
	if len(tokens) < 3 {
		return transport.ErrorReply("Invalid number of arguments supplied for set")
	}
	cell := tokens[1]
	expr := strings.Join(tokens[2:], " ")
	ts := d.clock.Next()
	if err := d.engine.Set(cell, expr, ts); err != nil {
		return transport.ErrorReply(err.Error())
	}
	return transport.Reply{}
}
