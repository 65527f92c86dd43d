// SPDX-FileCopyrightText: 2026 The kafkawriter Authors
// SPDX-License-Identifier: Apache-2.0

package kafkawriter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"time"
)

// Field is one named value of a log record. A nil Value marks an unset
// field, which the JSON formatters omit from the payload.
type Field struct {
	Name  string
	Value any
}

// Record is the ephemeral unit handed to Write(): the ordered field values
// of a single log entry. The Writer does not retain it past the call.
type Record struct {
	Fields []Field
}

// Formatter serializes a record's field values into the message payload.
// The payload format is opaque to the Writer.
//
// Implementations are driven by a single host thread and need no internal
// locking.
type Formatter interface {
	Format(rec *Record) ([]byte, error)
}

// TimestampFormat selects how the JSON formatters encode time.Time values.
type TimestampFormat int

const (
	// TimestampEpoch encodes timestamps as fractional epoch seconds with
	// microsecond precision, e.g. 1601652257.552135. The default.
	TimestampEpoch TimestampFormat = iota

	// TimestampMillis encodes timestamps as integer epoch milliseconds.
	TimestampMillis

	// TimestampISO8601 encodes timestamps as UTC ISO-8601 strings.
	TimestampISO8601
)

// String returns the string representation of the TimestampFormat.
func (t TimestampFormat) String() string {
	switch t {
	case TimestampEpoch:
		return "epoch"
	case TimestampMillis:
		return "millis"
	case TimestampISO8601:
		return "iso8601"
	default:
		return "unknown"
	}
}

// JSONFormatter renders a record as a single JSON object whose members
// appear in field order. Unset fields are omitted.
type JSONFormatter struct {
	// Timestamps selects the time.Time encoding.
	Timestamps TimestampFormat
}

// Format implements Formatter.
func (f *JSONFormatter) Format(rec *Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	for _, fld := range rec.Fields {
		if fld.Value == nil {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		name, err := json.Marshal(fld.Name)
		if err != nil {
			return nil, fmt.Errorf("encoding field name %q: %w", fld.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')

		if err := f.encodeValue(&buf, fld.Value); err != nil {
			return nil, fmt.Errorf("encoding field %q: %w", fld.Name, err)
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeValue writes one field value. Times, durations and addresses get
// domain encodings; everything else defers to encoding/json.
func (f *JSONFormatter) encodeValue(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case time.Time:
		f.encodeTime(buf, val)
	case time.Duration:
		// intervals are fractional seconds
		encodeFractionalSeconds(buf, int64(val/time.Microsecond))
	case net.IP:
		quoted, err := json.Marshal(val.String())
		if err != nil {
			return err
		}
		buf.Write(quoted)
	case []any:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := f.encodeValue(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return err
		}
		buf.Write(encoded)
	}
	return nil
}

func (f *JSONFormatter) encodeTime(buf *bytes.Buffer, t time.Time) {
	switch f.Timestamps {
	case TimestampMillis:
		fmt.Fprintf(buf, "%d", t.UnixMilli())
	case TimestampISO8601:
		buf.WriteByte('"')
		buf.WriteString(t.UTC().Format("2006-01-02T15:04:05.000000Z"))
		buf.WriteByte('"')
	default:
		encodeFractionalSeconds(buf, t.UnixMicro())
	}
}

// encodeFractionalSeconds writes a microsecond count as fractional seconds
// with six decimal places. The sign is hoisted out front so both halves are
// formatted unsigned; formatting them signed would emit values like
// "-1.-500000" for negative inputs.
func encodeFractionalSeconds(buf *bytes.Buffer, micros int64) {
	if micros < 0 {
		buf.WriteByte('-')
		micros = -micros
	}
	fmt.Fprintf(buf, "%d.%06d", micros/1000000, micros%1000000)
}

// TaggedJSONFormatter wraps the plain JSON object under a single member
// named after the originating stream, e.g. {"http":{...}}, so consumers of
// a shared topic can tell streams apart.
type TaggedJSONFormatter struct {
	// Tag is the stream path used as the wrapping member name.
	Tag string

	JSONFormatter
}

// Format implements Formatter.
func (f *TaggedJSONFormatter) Format(rec *Record) ([]byte, error) {
	inner, err := f.JSONFormatter.Format(rec)
	if err != nil {
		return nil, err
	}

	tag, err := json.Marshal(f.Tag)
	if err != nil {
		return nil, fmt.Errorf("encoding stream tag %q: %w", f.Tag, err)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(tag)
	buf.WriteByte(':')
	buf.Write(inner)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
