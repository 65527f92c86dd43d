// SPDX-FileCopyrightText: 2026 The kafkawriter Authors
// SPDX-License-Identifier: Apache-2.0

package kafkawriter

import (
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/mock"
)

// mockProducer is a mock implementation of kafkaProducer for testing.
type mockProducer struct {
	mock.Mock

	// events backs Events() directly: poll() reads the channel on every
	// write, and expectation bookkeeping there would drown out the
	// interesting calls.
	events chan kafka.Event
}

func newMockProducer() *mockProducer {
	return &mockProducer{events: make(chan kafka.Event, 16)}
}

func (m *mockProducer) Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error {
	args := m.Called(msg, deliveryChan)
	return args.Error(0)
}

func (m *mockProducer) Events() chan kafka.Event {
	return m.events
}

func (m *mockProducer) Len() int {
	args := m.Called()
	return args.Int(0)
}

func (m *mockProducer) Flush(timeoutMs int) int {
	args := m.Called(timeoutMs)
	return args.Int(0)
}

func (m *mockProducer) Close() {
	m.Called()
}

// mockFactory returns a producerFactory that yields the given producer or
// error, simulating broker-client construction.
func mockFactory(p kafkaProducer, err error) producerFactory {
	return func(conf *kafka.ConfigMap) (kafkaProducer, error) {
		return p, err
	}
}

// captureFactory records the ConfigMap handed to producer construction.
type captureFactory struct {
	conf *kafka.ConfigMap
	p    kafkaProducer
}

func (c *captureFactory) factory(conf *kafka.ConfigMap) (kafkaProducer, error) {
	c.conf = conf
	return c.p, nil
}
