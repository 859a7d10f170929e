package model

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/goccy/go-json"
)

// Record is what the playerlist stores about a single player. The SteamID
// is not part of the record; it is only the key it is stored under.
type Record struct {
	// CustomData holds free-form annotations. Never nil once loaded.
	CustomData    any      `json:"custom_data"`
	Verdict       Verdict  `json:"verdict"`
	PreviousNames []string `json:"previous_names"`
	// Modified is the time of the last manual change made by the user
	Modified time.Time `json:"modified"`
	Created  time.Time `json:"created"`
}

// NewRecord creates a record with default values
func NewRecord(now time.Time) *Record {
	now = now.UTC()
	return &Record{
		CustomData:    DefaultCustomData(),
		Verdict:       VerdictPlayer,
		PreviousNames: []string{},
		Modified:      now,
		Created:       now,
	}
}

// DefaultCustomData returns an empty JSON object
func DefaultCustomData() any {
	return map[string]any{}
}

// recordFields is the decoding shape of a Record. Pointers tell a missing
// or null value apart from a real one.
type recordFields struct {
	CustomData    any        `json:"custom_data"`
	Verdict       Verdict    `json:"verdict"`
	PreviousNames []*string  `json:"previous_names"`
	Modified      *time.Time `json:"modified"`
	Created       *time.Time `json:"created"`
}

// UnmarshalJSON decodes a record, filling in defaults for missing or null
// fields. An explicit null custom_data is kept as nil for the load-time
// normalization pass to repair. A null verdict or a null name is rejected.
func (r *Record) UnmarshalJSON(data []byte) error {
	if isNullJSON(data) {
		return errors.New("record is null")
	}
	var present map[string]json.RawMessage
	if err := json.Unmarshal(data, &present); err != nil {
		return err
	}
	if raw, ok := present["verdict"]; ok && isNullJSON(raw) {
		return fmt.Errorf("%w: null", ErrInvalidVerdict)
	}

	now := time.Now().UTC()
	decoded := recordFields{CustomData: DefaultCustomData()}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	names := make([]string, 0, len(decoded.PreviousNames))
	for i, name := range decoded.PreviousNames {
		if name == nil {
			return fmt.Errorf("previous_names[%d] is null", i)
		}
		names = append(names, *name)
	}

	record := Record{
		CustomData:    decoded.CustomData,
		Verdict:       decoded.Verdict,
		PreviousNames: names,
		Modified:      now,
		Created:       now,
	}
	if record.Verdict == "" {
		record.Verdict = VerdictPlayer
	}
	if decoded.Modified != nil {
		record.Modified = decoded.Modified.UTC()
	}
	if decoded.Created != nil {
		record.Created = decoded.Created.UTC()
	}
	*r = record
	return nil
}

func isNullJSON(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// IsEmpty returns true if the record does not hold any meaningful information
func (r *Record) IsEmpty() bool {
	return r.Verdict == VerdictPlayer && isEmptyValue(r.CustomData)
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		return rv.IsNil() || rv.Len() == 0
	case reflect.String:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// HasName reports whether name is already in the name history (exact match)
func (r *Record) HasName(name string) bool {
	return slices.Contains(r.PreviousNames, name)
}

// AddName appends name to the history unless already present.
// Returns true if the name was appended.
func (r *Record) AddName(name string) bool {
	if r.HasName(name) {
		return false
	}
	r.PreviousNames = append(r.PreviousNames, name)
	return true
}

// Normalize repairs legacy records that stored null custom data
func (r *Record) Normalize() {
	if r.CustomData == nil {
		r.CustomData = DefaultCustomData()
	}
}
