package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sheeplet1/rsheets/internal/engine"
	"github.com/Sheeplet1/rsheets/internal/graph"
	"github.com/Sheeplet1/rsheets/internal/store"
)

func newDispatcher() *Dispatcher {
	return New(engine.New(store.New(), graph.New()))
}

func TestGetTooFewArgs(t *testing.T) {
	d := newDispatcher()
	reply := d.Handle("get")
	assert.Equal(t, "error: Invalid number of arguments for get", reply.Encode())
}

func TestSetTooFewArgs(t *testing.T) {
	d := newDispatcher()
	reply := d.Handle("set A1")
	assert.Equal(t, "error: Invalid number of arguments supplied for set", reply.Encode())
}

func TestUnknownCommand(t *testing.T) {
	d := newDispatcher()
	reply := d.Handle("frobnicate A1")
	assert.Equal(t, "error: Invalid command", reply.Encode())
}

func TestSetThenGet(t *testing.T) {
	d := newDispatcher()
	assert.Equal(t, "", d.Handle("set A1 5").Encode(), "a successful set produces no reply")

	reply := d.Handle("get A1")
	assert.Contains(t, reply.Encode(), "A1, 5")
}

func TestInvalidCellProvided(t *testing.T) {
	d := newDispatcher()
	reply := d.Handle("get a1")
	assert.Equal(t, "error: Invalid cell provided.", reply.Encode())
}

func TestSetWithUnknownFunctionStoresErrorInsteadOfFailing(t *testing.T) {
	d := newDispatcher()
	assert.Equal(t, "", d.Handle("set A1 foo(1)").Encode(), "an expression error must be stored, not raised as a set failure")

	reply := d.Handle("get A1")
	assert.Contains(t, reply.Encode(), "A1, ")
	assert.Contains(t, reply.Encode(), "unknown function")
}
