package specs

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
)

// Entry types. A "header" entry labels every following entry until the
// next header and carries no meaningful value.
const (
	TypeText    = "text"
	TypeBoolean = "boolean"
	TypeHeader  = "header"
)

// Entry is a single row of a product's specification list.
// Value is a string for text entries and a bool for boolean entries;
// it is ignored for headers.
type Entry struct {
	Key   string `json:"key"`
	Value any    `json:"value,omitempty"`
	Type  string `json:"type"`
}

// BoolValue returns the entry value as a bool. The second return is
// false when the entry does not hold a boolean.
func (e Entry) BoolValue() (bool, bool) {
	b, ok := e.Value.(bool)
	return b, ok
}

// TextValue returns the entry value as a string. The second return is
// false when the entry does not hold a string.
func (e Entry) TextValue() (string, bool) {
	s, ok := e.Value.(string)
	return s, ok
}

// EntryList is the JSONB representation of a product's specifications.
type EntryList []Entry

func (l *EntryList) Scan(value interface{}) error {
	if value == nil {
		*l = make(EntryList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan EntryList")
	}
	return json.Unmarshal(bytes, l)
}

func (l EntryList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]Entry{})
	}
	return json.Marshal(l)
}

// Sanitize returns the list the admin form is allowed to persist:
// text entries with an empty value are dropped, header values are
// cleared. Boolean false is a meaningful value and is kept.
func Sanitize(entries []Entry) EntryList {
	out := make(EntryList, 0, len(entries))
	for _, e := range entries {
		switch e.Type {
		case TypeHeader:
			e.Value = nil
			if strings.TrimSpace(e.Key) == "" {
				continue
			}
		case TypeText:
			s, ok := e.TextValue()
			if !ok || strings.TrimSpace(s) == "" {
				continue
			}
		case TypeBoolean:
			if _, ok := e.BoolValue(); !ok {
				continue
			}
		default:
			continue
		}
		out = append(out, e)
	}
	return out
}
