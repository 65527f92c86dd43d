// SPDX-FileCopyrightText: 2026 The kafkawriter Authors
// SPDX-License-Identifier: Apache-2.0

package kafkawriter

import "errors"

var (
	// ErrConfig indicates a broker configuration entry was rejected.
	ErrConfig = &labeledError{
		label:   "config_error",
		message: "broker configuration rejected",
	}

	// ErrProducer indicates the broker client could not be constructed.
	ErrProducer = &labeledError{
		label:   "producer_error",
		message: "producer construction failed",
	}

	// ErrTopic indicates no destination topic could be resolved.
	ErrTopic = &labeledError{
		label:   "topic_error",
		message: "topic resolution failed",
	}

	// ErrEncoding indicates the formatter failed to serialize a record.
	ErrEncoding = &labeledError{
		label:   "encoding_error",
		message: "record encoding failed",
	}

	// ErrDelivery indicates a single message could not be submitted or
	// delivered. Delivery errors are per-record, never fatal.
	ErrDelivery = &labeledError{
		label:   "delivery_error",
		message: "message delivery failed",
	}

	// ErrDrainIncomplete indicates the outbound queue still held messages
	// when the shutdown wait bound expired.
	ErrDrainIncomplete = &labeledError{
		label:   "drain_incomplete",
		message: "shutdown drain incomplete",
	}

	// ErrNotInitialized indicates a write was attempted before Init()
	// succeeded or after Finish().
	ErrNotInitialized = &labeledError{
		label:   "not_initialized",
		message: "writer not initialized",
	}

	// ErrAlreadyInitialized indicates Init() was called more than once.
	ErrAlreadyInitialized = &labeledError{
		label:   "already_initialized",
		message: "writer already initialized",
	}
)

// labeledError is an internal error type that carries a short string
// classification alongside the human-readable message. The label is exposed
// on DeliveryEvent so hosts can group failures without parsing messages.
type labeledError struct {
	label   string
	message string
}

// Error implements the error interface.
func (e *labeledError) Error() string {
	return e.message
}

func (e *labeledError) Label() string {
	return e.label
}

func (e *labeledError) Is(target error) bool {
	if t, ok := target.(*labeledError); ok {
		return e.message == t.message
	}
	return false
}

// errorType extracts the classification label for an error.
// Walks the error chain to find labeledError types.
func errorType(err error) string {
	if err == nil {
		return ""
	}

	var le *labeledError
	if errors.As(err, &le) {
		return le.Label()
	}

	return "unknown"
}
