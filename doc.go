// SPDX-FileCopyrightText: 2026 The kafkawriter Authors
// SPDX-License-Identifier: Apache-2.0

// Package kafkawriter provides a pluggable output backend that ships
// formatted log records from a structured-logging framework to an Apache
// Kafka topic.
//
// # Overview
//
// A Writer is created once per output stream. Construction snapshots the
// user-supplied configuration into instance-private storage, Init builds
// the producer handle, Write submits each record for asynchronous
// transmission, and Finish drains the outbound queue within a configured
// time bound before releasing all resources.
//
// # Quick Start
//
//	w := kafkawriter.New(kafkawriter.Config{
//	    BrokerConf: map[string]string{
//	        "bootstrap.servers": "localhost:9092",
//	    },
//	    MaxWaitOnShutdown: 3000,
//	})
//
//	if err := w.Init("conn"); err != nil {
//	    log.Fatal(err)
//	}
//
//	err := w.Write(&kafkawriter.Record{Fields: []kafkawriter.Field{
//	    {Name: "ts", Value: time.Now()},
//	    {Name: "uid", Value: "CHhAvVGS1DHFjwGM9"},
//	}})
//	if err != nil {
//	    log.Printf("write failed: %v", err) // per-record, keep writing
//	}
//
//	if err := w.Finish(); err != nil {
//	    log.Printf("shutdown drain incomplete: %v", err)
//	}
//
// # Configuration
//
// BrokerConf entries are forwarded verbatim to the client library's global
// configuration, so any librdkafka producer property works unchanged
// ("compression.codec", "acks", "sasl.username", ...). An empty TopicName
// defaults to the stream path passed to Init. A non-empty Debug string
// enables client debug logging for the named contexts.
//
// # Delivery model
//
// Delivery is fire-and-forget: no per-message callback exists, and the only
// positive guarantee is the best-effort drain performed by Finish. Failed
// submissions and negative delivery reports are logged and dispatched to
// listeners registered with AddDeliveryEventListener, but a single failed
// record never takes the writer out of service.
//
// # Threading
//
// Each Writer is driven by exactly one host thread; methods are invoked
// sequentially and the Writer performs no internal locking. Write, Flush
// and Heartbeat advance the client's event loop without blocking. Finish is
// the sole blocking call, bounded by Config.MaxWaitOnShutdown.
package kafkawriter
