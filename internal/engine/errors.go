// Package engine: sentinel error set.
// Every algorithm in this package returns one of these sentinels on a
// validation failure; callers MUST branch with errors.Is, never by
// comparing error strings. Messages are prefixed "engine: ..." for
// consistent grepping across logs.
package engine

import "errors"

var (
	// ErrUnknownGate is returned when a label has no entry in the dispatch
	// table.
	ErrUnknownGate = errors.New("engine: unknown gate label")

	// ErrBadParameterCount is returned when a gate's parameter list length
	// does not exactly equal its declared parameter count.
	ErrBadParameterCount = errors.New("engine: wrong parameter count")

	// ErrBadWireCount is returned when a gate's wire list length does not
	// equal its arity.
	ErrBadWireCount = errors.New("engine: wrong wire count")

	// ErrWireOutOfRange is returned when a wire index is < 0 or >= N.
	ErrWireOutOfRange = errors.New("engine: wire index out of range")

	// ErrDuplicateWire is returned when the same wire index appears twice
	// in one operation's wire list.
	ErrDuplicateWire = errors.New("engine: duplicate wire index")

	// ErrBadBufferLength is returned when the state buffer length is not
	// exactly 2^N.
	ErrBadBufferLength = errors.New("engine: state buffer length is not 2^N")
)
