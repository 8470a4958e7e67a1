package specs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionRoundTrip(t *testing.T) {
	s := NewSelection()
	s.Add("Tárhely", "128 GB", "256 GB")
	s.Add("Szín", "Fekete")
	s.AddBool("5G", true)
	s.AddBool("NFC", false)

	decoded := ParseSelection(s.EncodeSpecs(), s.EncodeBoolSpecs())

	assert.Equal(t, s.Text(), decoded.Text())
	assert.Equal(t, s.Bools(), decoded.Bools())
}

func TestSelectionRoundTripWithReservedCharacters(t *testing.T) {
	s := NewSelection()
	s.Add("Ki:me;net", "3,5 mm jack", "a;b:c")
	s.AddBool("Víz;álló:ság", true)

	decoded := ParseSelection(s.EncodeSpecs(), s.EncodeBoolSpecs())

	require.Len(t, decoded.Text(), 1)
	assert.Equal(t, "Ki:me;net", decoded.Text()[0].Key)
	assert.Equal(t, []string{"3,5 mm jack", "a;b:c"}, decoded.Text()[0].Values)

	require.Len(t, decoded.Bools(), 1)
	assert.Equal(t, "Víz;álló:ság", decoded.Bools()[0].Key)
	assert.True(t, decoded.Bools()[0].Value)
}

func TestParseSelectionEmptyParams(t *testing.T) {
	s := ParseSelection("", "")
	assert.True(t, s.Empty())
	assert.Empty(t, s.Text())
	assert.Empty(t, s.Bools())
}

func TestParseSelectionDropsMalformedSegments(t *testing.T) {
	// Missing colon, empty key, empty value list, bad boolean and a bad
	// percent escape are all discarded without error.
	s := ParseSelection("novalue;:Fekete;Szín:;Szín:Fekete;K%zz:x", "5G:maybe;NFC:true")

	require.Len(t, s.Text(), 1)
	assert.Equal(t, "Szín", s.Text()[0].Key)
	assert.Equal(t, []string{"Fekete"}, s.Text()[0].Values)

	require.Len(t, s.Bools(), 1)
	assert.Equal(t, "NFC", s.Bools()[0].Key)
}

func TestSelectionEncodingIsCompact(t *testing.T) {
	s := NewSelection()
	s.Add("RAM", "8GB", "16GB")
	s.Add("Szin", "Fekete")
	s.AddBool("5G", false)

	assert.Equal(t, "RAM:8GB,16GB;Szin:Fekete", s.EncodeSpecs())
	assert.Equal(t, "5G:false", s.EncodeBoolSpecs())
}

func TestSelectionIgnoresEmptyAdds(t *testing.T) {
	s := NewSelection()
	s.Add("", "x")
	s.Add("Szín")
	s.AddBool("", true)
	assert.True(t, s.Empty())
}
