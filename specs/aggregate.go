package specs

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter types derived during aggregation. Headers never become
// filters, so "header" does not appear here.
const (
	FilterText    = "text"
	FilterBoolean = "boolean"
	FilterRange   = "range"
)

// UncategorizedLabel is the display label of the header-less group.
const UncategorizedLabel = "Egyéb"

// BooleanCount tallies how often a boolean specification was true or
// false across the scanned products.
type BooleanCount struct {
	True  int `json:"true"`
	False int `json:"false"`
}

// Filter is one facet derived for a distinct specification key.
type Filter struct {
	Key          string        `json:"key"`
	Type         string        `json:"type"`
	Values       []string      `json:"values,omitempty"`
	BooleanCount *BooleanCount `json:"boolean_count,omitempty"`
	Min          *float64      `json:"min,omitempty"`
	Max          *float64      `json:"max,omitempty"`
}

// Group is a set of facets under a shared header. Header is nil for
// the uncategorized bucket, which always sorts last.
type Group struct {
	Header *string  `json:"header"`
	Label  string   `json:"label"`
	Specs  []Filter `json:"specs"`
}

// headerTally counts, per specification key, how often the key was
// seen under each header. Insertion order is kept so the majority-vote
// tie-break ("first recorded wins") stays reproducible.
type headerTally struct {
	counts map[string]int
	order  []string
}

func (t *headerTally) add(header string) {
	if _, ok := t.counts[header]; !ok {
		t.order = append(t.order, header)
	}
	t.counts[header]++
}

// winner returns the header with the highest count; ties resolve to
// whichever header was recorded first.
func (t *headerTally) winner() string {
	best := ""
	bestCount := -1
	for _, h := range t.order {
		if t.counts[h] > bestCount {
			best = h
			bestCount = t.counts[h]
		}
	}
	return best
}

// Aggregate scans the specification lists of the matching products and
// derives the facet groups the storefront filter panel renders.
//
// Classification is decided once per key: the first entry seen for a
// key fixes the filter type, and later entries of a conflicting shape
// for the same key are ignored. The scan is read-only, deterministic
// for a given input order, and never fails: nil lists contribute
// nothing.
func Aggregate(products [][]Entry) []Group {
	filters := make(map[string]*Filter)
	keyOrder := make([]string, 0)
	tallies := make(map[string]*headerTally)

	for _, entries := range products {
		currentHeader := ""
		for _, e := range entries {
			if e.Type == TypeHeader {
				currentHeader = e.Key
				continue
			}
			if e.Key == "" {
				continue
			}

			tally, ok := tallies[e.Key]
			if !ok {
				tally = &headerTally{counts: make(map[string]int)}
				tallies[e.Key] = tally
			}
			tally.add(currentHeader)

			switch e.Type {
			case TypeBoolean:
				b, ok := e.BoolValue()
				if !ok {
					continue
				}
				f := filters[e.Key]
				if f == nil {
					f = &Filter{Key: e.Key, Type: FilterBoolean, BooleanCount: &BooleanCount{}}
					filters[e.Key] = f
					keyOrder = append(keyOrder, e.Key)
				}
				if f.Type != FilterBoolean {
					continue
				}
				if b {
					f.BooleanCount.True++
				} else {
					f.BooleanCount.False++
				}

			case TypeText:
				s, ok := e.TextValue()
				if !ok || s == "" {
					continue
				}
				if num, _, isRange := parseNumericPrefix(s); isRange {
					f := filters[e.Key]
					if f == nil {
						f = &Filter{Key: e.Key, Type: FilterRange}
						filters[e.Key] = f
						keyOrder = append(keyOrder, e.Key)
					}
					if f.Type != FilterRange {
						continue
					}
					if f.Min == nil || num < *f.Min {
						f.Min = ptr(num)
					}
					if f.Max == nil || num > *f.Max {
						f.Max = ptr(num)
					}
					f.Values = appendUnique(f.Values, s)
				} else {
					f := filters[e.Key]
					if f == nil {
						f = &Filter{Key: e.Key, Type: FilterText}
						filters[e.Key] = f
						keyOrder = append(keyOrder, e.Key)
					}
					if f.Type != FilterText {
						continue
					}
					f.Values = appendUnique(f.Values, s)
				}
			}
		}
	}

	// Keep only filters with discriminating power.
	grouped := make(map[string]*Group)
	groupOrder := make([]string, 0)
	for _, key := range keyOrder {
		f := filters[key]
		switch f.Type {
		case FilterText:
			if len(f.Values) < 2 {
				continue
			}
		case FilterBoolean:
			if f.BooleanCount.True == 0 && f.BooleanCount.False == 0 {
				continue
			}
		case FilterRange:
			if f.Min == nil || f.Max == nil || *f.Min == *f.Max {
				continue
			}
		}

		header := tallies[key].winner()
		g, ok := grouped[header]
		if !ok {
			g = &Group{Label: header}
			if header == "" {
				g.Label = UncategorizedLabel
			} else {
				h := header
				g.Header = &h
			}
			grouped[header] = g
			groupOrder = append(groupOrder, header)
		}
		g.Specs = append(g.Specs, *f)
	}

	// Collators are stateful, so build one per call.
	coll := collate.New(language.Hungarian)

	groups := make([]Group, 0, len(groupOrder))
	for _, header := range groupOrder {
		g := grouped[header]
		sort.SliceStable(g.Specs, func(i, j int) bool {
			return coll.CompareString(g.Specs[i].Key, g.Specs[j].Key) < 0
		})
		groups = append(groups, *g)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		// Uncategorized always sorts last.
		if groups[i].Header == nil {
			return false
		}
		if groups[j].Header == nil {
			return true
		}
		return coll.CompareString(*groups[i].Header, *groups[j].Header) < 0
	})

	return groups
}

func appendUnique(values []string, v string) []string {
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	return append(values, v)
}

func ptr(f float64) *float64 { return &f }
