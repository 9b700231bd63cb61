// Package flow implements the ephemeral customization sessions that
// collect a selection (size, options, flavors, note, quantity) before
// handing it to the cart engine. The flows are the validation gate: the
// engine is never called with an incomplete or unpriceable selection.
package flow

import (
	"errors"

	"menu-ordering-service/internal/catalog"
)

// Predefined guard errors. These surface to the caller as "cannot
// submit yet" conditions, never as faults; completing the missing input
// always recovers.
var (
	ErrClosed            = errors.New("flow: customization session already closed")
	ErrUnknownSize       = errors.New("flow: size not offered for this selection")
	ErrOptionsIncomplete = errors.New("flow: required option count not met")
	ErrFlavorsIncomplete = errors.New("flow: a combined item needs exactly two flavors")
)

// State tracks the lifecycle of a customization session.
type State int

const (
	Open State = iota
	Submitted
	Cancelled
)

// Reason tags how a session ended.
type Reason string

const (
	ReasonSubmit Reason = "submit"
	ReasonCancel Reason = "cancel"
)

// Outcome is the tagged result of closing a flow. Cancelling a combined
// session that was entered by upgrading a single flavor carries that
// flavor back as Seed, so the caller can reopen the simple flow
// pre-seeded instead of blank.
type Outcome struct {
	Reason Reason
	Seed   *catalog.Product
	LineID string
}
