package planet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	FieldID             = "id"
	FieldName           = "name"
	FieldRotationPeriod = "rotation_period"
	FieldOrbitalPeriod  = "orbital_period"
	FieldDiameter       = "diameter"
)

// AcceptedFields is the fixed allow-list of planet record keys
var AcceptedFields = []string{FieldID, FieldName, FieldRotationPeriod, FieldOrbitalPeriod, FieldDiameter}

// Record is a planet payload as submitted by the client. Keys keep their
// input order and values keep their raw JSON text, so encoding a Record
// reproduces what was received.
type Record struct {
	keys   []string
	values map[string]json.RawMessage
}

func (r *Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

func (r *Record) Get(key string) (json.RawMessage, bool) {
	value, ok := r.values[key]
	return value, ok
}

func (r *Record) Len() int {
	return len(r.keys)
}

// ID returns the record id when it is a JSON integer or a string holding one
func (r *Record) ID() (int, bool) {
	raw, ok := r.values[FieldID]
	if !ok {
		return 0, false
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		var number json.Number
		if err := json.Unmarshal(raw, &number); err != nil {
			return 0, false
		}
		text = number.String()
	}

	id, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}
	return id, true
}

// Name returns the record name when present as a string
func (r *Record) Name() (string, bool) {
	raw, ok := r.values[FieldName]
	if !ok {
		return "", false
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return "", false
	}
	return name, true
}

func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(r.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeRecord parses a planet payload. The payload may also arrive
// JSON-encoded a second time, as a JSON string holding the object.
func DecodeRecord(raw string) (*Record, error) {
	data := []byte(strings.TrimSpace(raw))

	var nested string
	if err := json.Unmarshal(data, &nested); err == nil {
		data = []byte(strings.TrimSpace(nested))
	}

	return parseObject(data)
}

func parseObject(data []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read planet data: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("planet data must be a JSON object")
	}

	record := &Record{values: make(map[string]json.RawMessage)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read planet field: %w", err)
		}
		key := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to read value of %s: %w", key, err)
		}

		// last value wins, first position is kept
		if _, seen := record.values[key]; !seen {
			record.keys = append(record.keys, key)
		}
		record.values[key] = value
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read planet data: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after planet object")
	}

	return record, nil
}
