// SPDX-FileCopyrightText: 2026 The kafkawriter Authors
// SPDX-License-Identifier: Apache-2.0

package kafkawriter

import (
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// kafkaProducer is an interface for the confluent-kafka-go producer methods
// we need. This allows us to mock the producer for testing while using the
// real kafka.Producer in production.
type kafkaProducer interface {
	// Produce enqueues a message for asynchronous transmission. Local
	// failures (queue full, message too large, unknown topic) are
	// returned immediately; delivery reports arrive on Events().
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error

	// Events returns the channel carrying delivery reports and
	// client-level errors.
	Events() chan kafka.Event

	// Len returns the number of messages and requests still queued
	// inside the client, awaiting transmission or acknowledgment.
	Len() int

	// Flush serves the client's event loop for up to timeoutMs,
	// returning the number of messages still outstanding.
	Flush(timeoutMs int) int

	// Close shuts down the producer and releases its resources.
	Close()
}

// Verify that *kafka.Producer implements kafkaProducer at compile time.
var _ kafkaProducer = (*kafka.Producer)(nil)

// producerFactory is a function that creates a producer from a client
// configuration. This allows dependency injection for testing.
type producerFactory func(conf *kafka.ConfigMap) (kafkaProducer, error)

// defaultProducerFactory is the production factory backed by
// confluent-kafka-go.
func defaultProducerFactory(conf *kafka.ConfigMap) (kafkaProducer, error) {
	return kafka.NewProducer(conf)
}
