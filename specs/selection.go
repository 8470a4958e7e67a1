package specs

import (
	"net/url"
	"strconv"
	"strings"
)

// Selection is the shopper's current facet choices, decoded from the
// "specs" and "boolSpecs" URL parameters. Insertion order is kept so
// re-encoding a decoded selection is stable.
type Selection struct {
	text      map[string][]string
	bools     map[string]bool
	textOrder []string
	boolOrder []string
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{
		text:  make(map[string][]string),
		bools: make(map[string]bool),
	}
}

// Add records selected values for a text or range facet. Empty keys
// and empty value lists are ignored.
func (s *Selection) Add(key string, values ...string) {
	if key == "" || len(values) == 0 {
		return
	}
	if _, ok := s.text[key]; !ok {
		s.textOrder = append(s.textOrder, key)
	}
	s.text[key] = append(s.text[key], values...)
}

// AddBool records a boolean facet choice.
func (s *Selection) AddBool(key string, value bool) {
	if key == "" {
		return
	}
	if _, ok := s.bools[key]; !ok {
		s.boolOrder = append(s.boolOrder, key)
	}
	s.bools[key] = value
}

// Empty reports whether no facet is selected.
func (s *Selection) Empty() bool {
	return len(s.text) == 0 && len(s.bools) == 0
}

// Text returns the selected text/range values in insertion order.
func (s *Selection) Text() []KeyValues {
	out := make([]KeyValues, 0, len(s.textOrder))
	for _, key := range s.textOrder {
		out = append(out, KeyValues{Key: key, Values: s.text[key]})
	}
	return out
}

// Bools returns the selected boolean facets in insertion order.
func (s *Selection) Bools() []KeyBool {
	out := make([]KeyBool, 0, len(s.boolOrder))
	for _, key := range s.boolOrder {
		out = append(out, KeyBool{Key: key, Value: s.bools[key]})
	}
	return out
}

// KeyValues is a per-key group of selected values, the shape the
// product query layer intersects against stored specifications.
type KeyValues struct {
	Key    string
	Values []string
}

type KeyBool struct {
	Key   string
	Value bool
}

// EncodeSpecs serializes the text/range selections as
// "key1:v1,v2;key2:v3" with every key and value percent-encoded, so
// reserved characters round-trip safely.
func (s *Selection) EncodeSpecs() string {
	parts := make([]string, 0, len(s.textOrder))
	for _, key := range s.textOrder {
		values := s.text[key]
		encoded := make([]string, 0, len(values))
		for _, v := range values {
			encoded = append(encoded, url.QueryEscape(v))
		}
		parts = append(parts, url.QueryEscape(key)+":"+strings.Join(encoded, ","))
	}
	return strings.Join(parts, ";")
}

// EncodeBoolSpecs serializes the boolean selections as
// "key1:true;key2:false".
func (s *Selection) EncodeBoolSpecs() string {
	parts := make([]string, 0, len(s.boolOrder))
	for _, key := range s.boolOrder {
		parts = append(parts, url.QueryEscape(key)+":"+strconv.FormatBool(s.bools[key]))
	}
	return strings.Join(parts, ";")
}

// ParseSelection decodes the "specs" and "boolSpecs" parameter values.
// Malformed segments are dropped silently; absent parameters decode to
// an empty selection.
func ParseSelection(specsParam, boolSpecsParam string) *Selection {
	s := NewSelection()

	if specsParam != "" {
		for _, part := range strings.Split(specsParam, ";") {
			key, rawValues, ok := strings.Cut(part, ":")
			if !ok {
				continue
			}
			decodedKey, err := url.QueryUnescape(key)
			if err != nil || decodedKey == "" {
				continue
			}
			values := make([]string, 0)
			for _, raw := range strings.Split(rawValues, ",") {
				v, err := url.QueryUnescape(raw)
				if err != nil || v == "" {
					continue
				}
				values = append(values, v)
			}
			if len(values) == 0 {
				continue
			}
			s.Add(decodedKey, values...)
		}
	}

	if boolSpecsParam != "" {
		for _, part := range strings.Split(boolSpecsParam, ";") {
			key, rawValue, ok := strings.Cut(part, ":")
			if !ok {
				continue
			}
			decodedKey, err := url.QueryUnescape(key)
			if err != nil || decodedKey == "" {
				continue
			}
			value, err := strconv.ParseBool(rawValue)
			if err != nil {
				continue
			}
			s.AddBool(decodedKey, value)
		}
	}

	return s
}
