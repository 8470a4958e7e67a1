package specs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(key, value string) Entry {
	return Entry{Key: key, Value: value, Type: TypeText}
}

func boolean(key string, value bool) Entry {
	return Entry{Key: key, Value: value, Type: TypeBoolean}
}

func header(key string) Entry {
	return Entry{Key: key, Type: TypeHeader}
}

func findFilter(t *testing.T, groups []Group, key string) Filter {
	t.Helper()
	for _, g := range groups {
		for _, f := range g.Specs {
			if f.Key == key {
				return f
			}
		}
	}
	t.Fatalf("filter %q not found", key)
	return Filter{}
}

func TestAggregateEmptyInput(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
	assert.Empty(t, Aggregate([][]Entry{}))
	assert.Empty(t, Aggregate([][]Entry{nil, nil}))
}

func TestAggregateIsDeterministic(t *testing.T) {
	products := [][]Entry{
		{header("Kijelző"), text("Méret", "6,1 hüvelyk"), text("Típus", "OLED")},
		{header("Kijelző"), text("Méret", "6,7 hüvelyk"), text("Típus", "LCD")},
		{boolean("5G", true), text("Szín", "Fekete")},
		{boolean("5G", false), text("Szín", "Fehér")},
	}

	first := Aggregate(products)
	second := Aggregate(products)
	assert.Equal(t, first, second)
}

func TestAggregateDropsSingleValueTextFilters(t *testing.T) {
	products := [][]Entry{
		{text("Gyártó", "Acme"), text("Szín", "Fekete")},
		{text("Gyártó", "Acme"), text("Szín", "Fehér")},
	}

	groups := Aggregate(products)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Specs, 1)
	assert.Equal(t, "Szín", groups[0].Specs[0].Key)
	assert.Equal(t, []string{"Fekete", "Fehér"}, groups[0].Specs[0].Values)
}

func TestAggregateRangeDetection(t *testing.T) {
	products := [][]Entry{
		{text("Tárhely", "128 GB")},
		{text("Tárhely", "256GB")},
	}

	groups := Aggregate(products)
	f := findFilter(t, groups, "Tárhely")

	assert.Equal(t, FilterRange, f.Type)
	require.NotNil(t, f.Min)
	require.NotNil(t, f.Max)
	assert.Equal(t, 128.0, *f.Min)
	assert.Equal(t, 256.0, *f.Max)
	assert.Equal(t, []string{"128 GB", "256GB"}, f.Values)
}

func TestAggregateDecimalCommaParsing(t *testing.T) {
	products := [][]Entry{
		{text("Vastagság", "128,5 mm")},
		{text("Vastagság", "7,9 mm")},
	}

	f := findFilter(t, Aggregate(products), "Vastagság")
	assert.Equal(t, FilterRange, f.Type)
	assert.Equal(t, 7.9, *f.Min)
	assert.Equal(t, 128.5, *f.Max)
}

func TestAggregateDropsDegenerateRange(t *testing.T) {
	products := [][]Entry{
		{text("Tömeg", "200 g")},
		{text("Tömeg", "200 g")},
	}

	assert.Empty(t, Aggregate(products))
}

func TestAggregateBooleanTally(t *testing.T) {
	products := [][]Entry{
		{boolean("5G", true)},
		{boolean("5G", false)},
		{boolean("5G", true)},
	}

	f := findFilter(t, Aggregate(products), "5G")
	assert.Equal(t, FilterBoolean, f.Type)
	require.NotNil(t, f.BooleanCount)
	assert.Equal(t, 2, f.BooleanCount.True)
	assert.Equal(t, 1, f.BooleanCount.False)
}

func TestAggregateMajorityVoteHeaderAssignment(t *testing.T) {
	products := [][]Entry{
		{header("Optika"), text("Kamera", "12 MP")},
		{header("Optika"), text("Kamera", "48 MP")},
		{header("Optika"), text("Kamera", "108 MP")},
		{header("Egyéb"), text("Kamera", "64 MP")},
	}

	groups := Aggregate(products)
	require.Len(t, groups, 1)
	require.NotNil(t, groups[0].Header)
	assert.Equal(t, "Optika", *groups[0].Header)
	assert.Equal(t, "Kamera", groups[0].Specs[0].Key)
}

func TestAggregateMajorityVoteTieBreaksOnFirstRecorded(t *testing.T) {
	products := [][]Entry{
		{header("Hangzás"), text("Hangszóró", "Sztereó")},
		{header("Audio"), text("Hangszóró", "Mono")},
	}

	groups := Aggregate(products)
	require.Len(t, groups, 1)
	require.NotNil(t, groups[0].Header)
	assert.Equal(t, "Hangzás", *groups[0].Header)
}

func TestAggregateUncategorizedGroupIsLast(t *testing.T) {
	products := [][]Entry{
		{text("Szín", "Fekete"), header("Kijelző"), text("Típus", "OLED")},
		{text("Szín", "Fehér"), header("Kijelző"), text("Típus", "LCD")},
	}

	groups := Aggregate(products)
	require.Len(t, groups, 2)

	assert.NotNil(t, groups[0].Header)
	assert.Equal(t, "Kijelző", *groups[0].Header)

	assert.Nil(t, groups[1].Header)
	assert.Equal(t, UncategorizedLabel, groups[1].Label)
	assert.Equal(t, "Szín", groups[1].Specs[0].Key)
}

func TestAggregateGroupsSortedAlphabetically(t *testing.T) {
	products := [][]Entry{
		{
			header("Memória"), text("RAM", "8 GB"),
			header("Akkumulátor"), text("Kapacitás", "4000 mAh"),
		},
		{
			header("Memória"), text("RAM", "16 GB"),
			header("Akkumulátor"), text("Kapacitás", "5000 mAh"),
		},
	}

	groups := Aggregate(products)
	require.Len(t, groups, 2)
	assert.Equal(t, "Akkumulátor", *groups[0].Header)
	assert.Equal(t, "Memória", *groups[1].Header)
}

func TestAggregateSpecsSortedWithinGroup(t *testing.T) {
	products := [][]Entry{
		{header("Kijelző"), text("Típus", "OLED"), text("Fényerő", "800 nit")},
		{header("Kijelző"), text("Típus", "LCD"), text("Fényerő", "1200 nit")},
	}

	groups := Aggregate(products)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Specs, 2)
	assert.Equal(t, "Fényerő", groups[0].Specs[0].Key)
	assert.Equal(t, "Típus", groups[0].Specs[1].Key)
}

func TestAggregateFirstSeenTypeWins(t *testing.T) {
	// The same key shows up as a boolean in one product and as text in
	// another; the first shape fixes the type and the conflicting entry
	// is ignored.
	products := [][]Entry{
		{boolean("NFC", true)},
		{text("NFC", "Igen")},
		{boolean("NFC", false)},
	}

	f := findFilter(t, Aggregate(products), "NFC")
	assert.Equal(t, FilterBoolean, f.Type)
	assert.Equal(t, 1, f.BooleanCount.True)
	assert.Equal(t, 1, f.BooleanCount.False)
	assert.Empty(t, f.Values)
}

func TestAggregateIgnoresEmptyTextValues(t *testing.T) {
	products := [][]Entry{
		{text("Szín", ""), text("Szín", "Fekete")},
		{text("Szín", "Fehér")},
	}

	f := findFilter(t, Aggregate(products), "Szín")
	assert.Equal(t, []string{"Fekete", "Fehér"}, f.Values)
}

func TestSanitize(t *testing.T) {
	in := []Entry{
		header("Kijelző"),
		{Key: "Kijelző típus", Value: "OLED", Type: TypeText},
		{Key: "Üres", Value: "   ", Type: TypeText},
		{Key: "5G", Value: false, Type: TypeBoolean},
		{Key: "", Type: TypeHeader},
		{Key: "Hibás", Value: 12, Type: TypeBoolean},
	}

	out := Sanitize(in)
	require.Len(t, out, 3)
	assert.Equal(t, "Kijelző", out[0].Key)
	assert.Equal(t, "Kijelző típus", out[1].Key)
	// Boolean false is meaningful and must survive.
	assert.Equal(t, "5G", out[2].Key)
	assert.Equal(t, false, out[2].Value)
}
