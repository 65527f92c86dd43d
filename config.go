// SPDX-FileCopyrightText: 2026 The kafkawriter Authors
// SPDX-License-Identifier: Apache-2.0

package kafkawriter

import (
	"errors"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// Config holds the user-supplied settings for a Writer.
//
// New() copies the Config, including the broker configuration map, into
// instance-private storage. The host's copy of the map may be shared with
// other threads and mutated after construction; the Writer never reads it
// again. Once Init() begins the snapshot is never mutated.
type Config struct {
	// TopicName is the destination topic. Empty means "default to the
	// stream path the host passes to Init()".
	TopicName string

	// BrokerConf is forwarded verbatim, entry by entry, to the broker
	// client's global configuration. Keys and values use the client
	// library's property names (for example "bootstrap.servers").
	BrokerConf map[string]string

	// TagJSON selects the stream-tagged JSON payload shape instead of a
	// plain JSON object. Only consulted when no Formatter was injected.
	TagJSON bool

	// Debug enables client debug logging when non-empty. The value is a
	// comma-separated list of client debug contexts and is applied as the
	// "debug" configuration key.
	Debug string

	// MaxWaitOnShutdown bounds, in milliseconds, how long Finish() may
	// wait for the outbound queue to drain.
	MaxWaitOnShutdown int

	// Timestamps selects how the default JSON formatters encode
	// time.Time field values. Defaults to TimestampEpoch.
	Timestamps TimestampFormat
}

// clone returns a deep copy of the Config. BrokerConf is the only reference
// field.
func (c Config) clone() Config {
	out := c
	if c.BrokerConf != nil {
		out.BrokerConf = make(map[string]string, len(c.BrokerConf))
		for k, v := range c.BrokerConf {
			out.BrokerConf[k] = v
		}
	}
	return out
}

// brokerConfigMap builds the client's global configuration from the
// snapshot, applying each entry individually so a rejected key can be
// reported with its value and reason. A non-empty Debug setting is applied
// as an additional "debug" key under the same rule.
//
// Note that the client library defers most value validation to producer
// construction; errors there carry the offending property name and are
// treated as equally fatal by Init().
func (c Config) brokerConfigMap() (*kafka.ConfigMap, error) {
	conf := kafka.ConfigMap{}

	for key, val := range c.BrokerConf {
		if err := conf.SetKey(key, val); err != nil {
			return nil, errors.Join(ErrConfig,
				fmt.Errorf("failed to set %q=%q: %w", key, val, err))
		}
	}

	if c.Debug != "" {
		if err := conf.SetKey("debug", c.Debug); err != nil {
			return nil, errors.Join(ErrConfig,
				fmt.Errorf("failed to set %q=%q: %w", "debug", c.Debug, err))
		}
	}

	return &conf, nil
}
