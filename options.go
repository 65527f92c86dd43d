// SPDX-FileCopyrightText: 2026 The kafkawriter Authors
// SPDX-License-Identifier: Apache-2.0

package kafkawriter

import "go.uber.org/zap"

// Option configures a Writer at construction time.
type Option func(*Writer)

// WithLogger sets the logger for the Writer's informational and error
// messages. The default logger drops everything.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Writer) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithFormatter injects the record formatter, overriding the JSON formatter
// Init() would otherwise select from the TagJSON setting.
func WithFormatter(f Formatter) Option {
	return func(w *Writer) {
		w.formatter = f
	}
}

// WithDeliveryEventListener registers a listener at construction time.
// Equivalent to calling AddDeliveryEventListener before Init().
func WithDeliveryEventListener(fn func(*DeliveryEvent)) Option {
	return func(w *Writer) {
		w.deliveryListeners.Add(fn)
	}
}
