// SPDX-FileCopyrightText: 2026 The kafkawriter Authors
// SPDX-License-Identifier: Apache-2.0

package kafkawriter

// State represents the lifecycle state of a Writer.
type State int

const (
	// StateUninitialized is the state of a freshly constructed Writer.
	// Only Init() may be called.
	StateUninitialized State = iota

	// StateConfiguringBroker indicates Init() is applying the broker
	// configuration map to the client configuration.
	StateConfiguringBroker

	// StateBrokerReady indicates the client configuration was accepted
	// and the producer is being constructed.
	StateBrokerReady

	// StateTopicReady indicates the producer exists and the destination
	// topic has been resolved.
	StateTopicReady

	// StateOperational indicates Init() completed; Write, Flush and
	// Heartbeat are accepted.
	StateOperational

	// StateFailed is terminal: initialization failed and the host must
	// not route records to this writer.
	StateFailed

	// StateClosed is terminal: Finish() ran and all resources were
	// released.
	StateClosed
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateConfiguringBroker:
		return "ConfiguringBroker"
	case StateBrokerReady:
		return "BrokerReady"
	case StateTopicReady:
		return "TopicReady"
	case StateOperational:
		return "Operational"
	case StateFailed:
		return "Failed"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}
