// Package modal implements dialogs that own all input until they reach a
// terminal outcome. Each dialog is a state machine stepped once per frame.
package modal

import (
	"subpixel/internal/platform"
	"subpixel/internal/render"
)

type Status int

const (
	StatusOpen Status = iota
	StatusConfirmed
	StatusCancelled
	StatusDismissed
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusConfirmed:
		return "confirmed"
	case StatusCancelled:
		return "cancelled"
	case StatusDismissed:
		return "dismissed"
	}
	return "unknown"
}

// Terminal reports whether the dialog has finished.
func (s Status) Terminal() bool { return s != StatusOpen }

// Result is the outcome of a dialog. Index is -1 and Value empty unless
// Status is StatusConfirmed.
type Result struct {
	Status Status
	Index  int
	Value  string
}

func (r Result) Confirmed() bool { return r.Status == StatusConfirmed }

// Frame is one frame of input, already mapped into virtual canvas space.
type Frame struct {
	Pointer platform.Pointer
	Events  []platform.Event
}

type Modal interface {
	// Step consumes one frame of input and returns the resulting status.
	// Once terminal, further frames are ignored.
	Step(f Frame) Status
	// Draw renders the dialog over whatever fb already holds.
	Draw(fb *render.FrameBuffer)
	// Abandon forces the dialog's no-value outcome.
	Abandon()
	Result() Result
}
