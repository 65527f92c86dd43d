// SPDX-FileCopyrightText: 2026 The kafkawriter Authors
// SPDX-License-Identifier: Apache-2.0

//go:build integration

package kafkawriter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/twmb/franz-go/pkg/kgo"
)

const consumeWait = 15 * time.Second

// setupKafka starts Kafka using testcontainers and returns the broker
// address. Cleanup is registered automatically.
func setupKafka(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := tckafka.Run(ctx,
		"confluentinc/confluent-local:7.8.0",
		tckafka.WithClusterID("kafkawriter-test"),
	)
	require.NoError(t, err, "failed to start Kafka container")

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate Kafka container: %v", err)
		}
	})

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err, "failed to get Kafka brokers")
	require.NotEmpty(t, brokers, "no Kafka brokers available")

	t.Logf("Kafka broker available at: %s", brokers[0])
	return brokers[0]
}

// consumeRecords reads up to want record payloads from the topic, polling
// from the earliest offset until enough arrive or the timeout expires.
func consumeRecords(t *testing.T, broker, topic string, want int, timeout time.Duration) [][]byte {
	t.Helper()

	cl, err := kgo.NewClient(
		kgo.SeedBrokers(broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err, "failed to create consumer")
	defer cl.Close()

	var payloads [][]byte
	deadline := time.Now().Add(timeout)
	for len(payloads) < want && time.Now().Before(deadline) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		fetches := cl.PollFetches(ctx)
		cancel()

		fetches.EachRecord(func(r *kgo.Record) {
			payloads = append(payloads, r.Value)
		})
	}

	return payloads
}
