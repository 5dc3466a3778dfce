package models

import (
	"bytes"
	"fmt"
	"time"
)

// Timestamp accepts RFC 3339 as well as the naive ISO timestamps the backend
// emits (no zone, interpreted as UTC).
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return Timestamp{Time: t.UTC()}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognised timestamp %q", s)
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*ts = Timestamp{}
		return nil
	}

	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("timestamp must be a JSON string, got %s", data)
	}

	parsed, err := ParseTimestamp(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}

	*ts = parsed
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + ts.UTC().Format(time.RFC3339Nano) + `"`), nil
}
