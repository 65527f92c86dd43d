// SPDX-FileCopyrightText: 2026 The kafkawriter Authors
// SPDX-License-Identifier: Apache-2.0

package kafkawriter

// DeliveryEvent describes a failure the Writer observed: a record that could
// not be serialized or submitted, a negative delivery report from the
// broker, or an incomplete shutdown drain.
//
// Successful deliveries produce no event. The backend is fire-and-forget:
// the only positive guarantee is the best-effort drain at shutdown.
type DeliveryEvent struct {
	// Topic is the destination topic the record was bound for.
	Topic string

	// Queued is the outbound queue length observed when the event was
	// dispatched.
	Queued int

	// Error is the failure that occurred.
	Error error

	// ErrorType is the error classification. Values: "config_error",
	// "encoding_error", "delivery_error", "drain_incomplete", etc.
	ErrorType string
}

// AddDeliveryEventListener adds a listener invoked for every failure the
// Writer observes. The returned function removes the listener.
//
// Listeners run on the host thread driving the Writer and must not block.
func (w *Writer) AddDeliveryEventListener(fn func(*DeliveryEvent)) func() {
	return w.deliveryListeners.Add(fn)
}

// dispatchEvent fills in the error fields and fans the event out to all
// registered listeners.
func (w *Writer) dispatchEvent(event *DeliveryEvent, err error) {
	event.Error = err
	event.ErrorType = errorType(err)

	w.deliveryListeners.Visit(func(listener func(*DeliveryEvent)) {
		listener(event)
	})
}
