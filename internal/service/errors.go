package service

import (
	"errors"
	"fmt"
)

// Kind classifies a failed call for display.
type Kind int

const (
	// KindRemote means the server answered with an error status.
	KindRemote Kind = iota
	// KindConnectivity means no response was received.
	KindConnectivity
	// KindRequest means the request could not be built or sent from our side.
	KindRequest
)

func (k Kind) String() string {
	switch k {
	case KindRemote:
		return "remote"
	case KindConnectivity:
		return "connectivity"
	case KindRequest:
		return "request"
	}
	return "unknown"
}

// Op names a service operation.
type Op string

const (
	OpGenerate Op = "generate"
	OpExtract  Op = "extract"
	OpHealth   Op = "health"
	OpInfo     Op = "info"
)

// Display texts. Connectivity failures share one message across
// operations so users can tell them apart from server rejections.
const (
	MsgConnectivity   = "Cannot reach the server. Check that the backend is running."
	MsgHealthDown     = "Cannot reach the API server."
	MsgGenerateRemote = "The server reported an error."
	MsgExtractRemote  = "Image analysis failed."
	MsgGenerateBuild  = "Could not build the request."
	MsgExtractBuild   = "Could not upload the image."
)

// Error is returned by every Client method.
type Error struct {
	Op      Op
	Kind    Kind
	Status  int    // HTTP status for KindRemote
	Message string // display text
	Err     error  // underlying cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d): %s", e.Op, e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// UserMessage returns the text shown to the user.
func (e *Error) UserMessage() string { return e.Message }

// UserMessage normalizes any error into a single display string.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}

// IsKind reports whether err is a service error of the given kind.
func IsKind(err error, k Kind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == k
}

func remoteFallback(op Op) string {
	switch op {
	case OpExtract:
		return MsgExtractRemote
	case OpHealth, OpInfo:
		return MsgHealthDown
	}
	return MsgGenerateRemote
}

func buildFailure(op Op) string {
	if op == OpExtract {
		return MsgExtractBuild
	}
	return MsgGenerateBuild
}

func connectivityFailure(op Op) string {
	if op == OpHealth || op == OpInfo {
		return MsgHealthDown
	}
	return MsgConnectivity
}
