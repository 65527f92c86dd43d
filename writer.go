// SPDX-FileCopyrightText: 2026 The kafkawriter Authors
// SPDX-License-Identifier: Apache-2.0

package kafkawriter

import (
	"errors"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/xmidt-org/eventor"
	"go.uber.org/zap"
)

// drainPollInterval is how long each Finish() poll serves the client event
// loop, in milliseconds. The shutdown wait is accumulated in these steps.
const drainPollInterval = 1000

// Writer ships formatted log records to a Kafka topic.
//
// A Writer is driven by exactly one host thread: Init, Write, Flush,
// Heartbeat, SetBuffering, Rotate and Finish are invoked sequentially and
// the Writer performs no internal locking. The broker client is the only
// component doing background work; the Writer observes it solely through
// the outbound queue length and the result of individual calls.
//
// Write, Flush and Heartbeat never block on network I/O. Finish is the one
// call allowed to block, and only up to the configured shutdown wait bound.
type Writer struct {
	// cfg is the instance-private snapshot taken by New(). Never mutated
	// once Init() begins.
	cfg Config

	// logger carries the human-readable side channel: initialization
	// outcomes, debug notices, per-record and drain failures.
	logger *zap.Logger

	// formatter serializes records. Selected during Init() from the
	// TagJSON setting unless injected via WithFormatter.
	formatter Formatter

	// producerFactory creates the broker client. Overridable in tests.
	producerFactory producerFactory

	// producer and topic together form the producer handle: created as a
	// pair during Init(), destroyed as a pair during Finish(). At most
	// one live handle exists per Writer.
	producer kafkaProducer
	topic    string

	state State

	deliveryListeners eventor.Eventor[func(*DeliveryEvent)]
}

// New constructs a Writer, snapshotting cfg into instance-private storage.
// The snapshot insulates the Writer from later mutation of the caller's
// configuration, so the host may keep sharing that state with other
// threads. No errors are possible here; a missing topic name is resolved at
// Init() time.
func New(cfg Config, opts ...Option) *Writer {
	w := &Writer{
		cfg:             cfg.clone(),
		logger:          zap.NewNop(),
		producerFactory: defaultProducerFactory,
		state:           StateUninitialized,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Init builds the producer handle from the configuration snapshot.
// streamPath identifies the host's output stream and doubles as the default
// topic name and the payload tag for tagged serialization.
//
// Any rejected configuration entry, failed producer construction or failed
// topic resolution is fatal: the Writer transitions to StateFailed and the
// host must not route records to it.
func (w *Writer) Init(streamPath string) error {
	if w.state != StateUninitialized {
		return errors.Join(ErrAlreadyInitialized,
			fmt.Errorf("init called in state %s", w.state))
	}
	w.state = StateConfiguringBroker

	// The explicit topic name wins; otherwise the stream path is the topic.
	topic := w.cfg.TopicName
	if topic == "" {
		topic = streamPath
	}

	if w.formatter == nil {
		w.formatter = w.newFormatter(streamPath)
	}

	debugEnabled := w.cfg.Debug != ""
	if debugEnabled {
		w.logger.Info("client debug enabled",
			zap.String("contexts", w.cfg.Debug))
	} else {
		w.logger.Info("client debug disabled")
	}

	conf, err := w.cfg.brokerConfigMap()
	if err != nil {
		w.state = StateFailed
		w.logger.Error("applying broker configuration failed", zap.Error(err))
		return err
	}
	w.state = StateBrokerReady

	producer, err := w.producerFactory(conf)
	if err != nil {
		w.state = StateFailed
		err = errors.Join(ErrProducer,
			fmt.Errorf("failed to create producer: %w", err))
		w.logger.Error("creating producer failed", zap.Error(err))
		return err
	}

	if topic == "" {
		producer.Close()
		w.state = StateFailed
		err = errors.Join(ErrTopic,
			errors.New("no topic name configured and no stream path to default from"))
		w.logger.Error("resolving topic failed", zap.Error(err))
		return err
	}
	w.topic = topic
	w.state = StateTopicReady

	w.producer = producer
	w.state = StateOperational

	w.logger.Info("kafka writer initialized",
		zap.String("topic", topic),
		zap.Bool("tagged", w.cfg.TagJSON),
	)
	return nil
}

// Write serializes one record and submits it for asynchronous transmission,
// then advances the client event loop with a zero-timeout poll. The client
// copies the payload on enqueue; partition placement is left to the broker.
//
// A returned error is per-record, never fatal: the Writer stays Operational
// and subsequent writes may succeed. Write never blocks on network I/O.
func (w *Writer) Write(rec *Record) error {
	if w.state != StateOperational {
		return errors.Join(ErrNotInitialized,
			fmt.Errorf("write called in state %s", w.state))
	}

	payload, err := w.formatter.Format(rec)
	if err != nil {
		err = errors.Join(ErrEncoding, err)
		w.logger.Error("formatting record failed",
			zap.String("topic", w.topic), zap.Error(err))
		w.dispatchEvent(&DeliveryEvent{Topic: w.topic, Queued: w.producer.Len()}, err)
		return err
	}

	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &w.topic,
			Partition: kafka.PartitionAny,
		},
		Value: payload,
	}

	if err := w.producer.Produce(msg, nil); err != nil {
		err = errors.Join(ErrDelivery,
			fmt.Errorf("kafka send failed: %w", err))
		w.logger.Error("kafka send failed",
			zap.String("topic", w.topic), zap.Error(err))
		w.dispatchEvent(&DeliveryEvent{Topic: w.topic, Queued: w.producer.Len()}, err)
		return err
	}

	w.poll()
	return nil
}

// Flush advances the client event loop with a zero-timeout poll. It cannot
// fail: the Writer keeps no local buffer, so there is nothing else to flush.
func (w *Writer) Flush() {
	if w.producer == nil {
		return
	}
	w.poll()
}

// Heartbeat advances the client event loop between writes so delivery
// bookkeeping progresses even when no new records arrive. Never blocks.
func (w *Writer) Heartbeat() {
	if w.producer == nil {
		return
	}
	w.poll()
}

// SetBuffering accepts the host's buffering toggle. It has no effect; the
// broker client owns all buffering.
func (w *Writer) SetBuffering(enabled bool) {}

// Rotate acknowledges a rotation request as complete. Output is not
// file-based, so rotation has no semantics here.
func (w *Writer) Rotate(path string) bool {
	return true
}

// Finish drains the outbound queue and releases all owned resources.
//
// The drain polls the client event loop in fixed intervals, accumulating
// waited time, while the queue is non-empty and the cumulative wait has not
// exceeded MaxWaitOnShutdown. There is no cancellation once Finish begins;
// the bound is the only escape from a broker that never drains.
//
// The producer handle and formatter are released on the single exit path
// regardless of drain outcome. A non-nil return means messages were left
// undelivered, not that cleanup failed. Finish is idempotent.
func (w *Writer) Finish() error {
	if w.producer == nil {
		return nil
	}

	waited := 0
	for w.producer.Len() > 0 && waited <= w.cfg.MaxWaitOnShutdown {
		w.producer.Flush(drainPollInterval)
		waited += drainPollInterval
	}

	var err error
	if remaining := w.producer.Len(); remaining > 0 {
		err = errors.Join(ErrDrainIncomplete,
			fmt.Errorf("unable to deliver %d message(s)", remaining))
		w.logger.Error("shutdown drain incomplete",
			zap.String("topic", w.topic),
			zap.Int("undelivered", remaining),
			zap.Int("waited_ms", waited),
		)
		w.dispatchEvent(&DeliveryEvent{Topic: w.topic, Queued: remaining}, err)
	}

	w.producer.Close()
	w.producer = nil
	w.formatter = nil
	w.topic = ""
	w.state = StateClosed

	return err
}

// State reports the Writer's lifecycle state.
func (w *Writer) State() State {
	return w.state
}

// Topic reports the resolved destination topic. Empty before Init() and
// after Finish().
func (w *Writer) Topic() string {
	return w.topic
}

// poll drains the client's event channel without blocking, processing any
// delivery reports that have already arrived.
func (w *Writer) poll() {
	for {
		select {
		case ev, ok := <-w.producer.Events():
			if !ok {
				return
			}
			w.serveEvent(ev)
		default:
			return
		}
	}
}

// serveEvent handles one client event: negative delivery reports and
// client-level errors are reported, everything else is bookkeeping the
// client has already done for us.
func (w *Writer) serveEvent(ev kafka.Event) {
	switch e := ev.(type) {
	case *kafka.Message:
		if e.TopicPartition.Error == nil {
			return
		}
		err := errors.Join(ErrDelivery, e.TopicPartition.Error)
		w.logger.Error("message delivery failed",
			zap.String("topic", w.topic), zap.Error(err))
		w.dispatchEvent(&DeliveryEvent{Topic: w.topic, Queued: w.producer.Len()}, err)
	case kafka.Error:
		w.logger.Error("kafka client error",
			zap.String("code", e.Code().String()), zap.Error(e))
	}
}

// newFormatter selects the payload serialization once, at init time, from
// the tagging flag.
func (w *Writer) newFormatter(streamPath string) Formatter {
	if w.cfg.TagJSON {
		return &TaggedJSONFormatter{
			Tag:           streamPath,
			JSONFormatter: JSONFormatter{Timestamps: w.cfg.Timestamps},
		}
	}
	return &JSONFormatter{Timestamps: w.cfg.Timestamps}
}
