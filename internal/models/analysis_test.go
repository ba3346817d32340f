package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_ValueScanRoundTrip(t *testing.T) {
	original := StringList{"Dart", "Flutter SDK", "Git"}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(value))

	assert.Equal(t, original, scanned)
}

func TestStringList_NilValueIsEmptyArray(t *testing.T) {
	var list StringList

	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}

func TestStringList_ScanNil(t *testing.T) {
	var list StringList

	require.NoError(t, list.Scan(nil))
	assert.Empty(t, list)
}

func TestStringList_ScanString(t *testing.T) {
	var list StringList

	require.NoError(t, list.Scan(`["Python","SQL"]`))
	assert.Equal(t, StringList{"Python", "SQL"}, list)
}

func TestStringList_ScanUnsupportedType(t *testing.T) {
	var list StringList

	assert.Error(t, list.Scan(42))
}

func TestRoadmapWeeks_ValueScanRoundTrip(t *testing.T) {
	original := RoadmapWeeks{
		{Week: 1, Topic: "Flutter SDK", Description: "Learn widgets.", Resources: []string{"a", "b"}, Link: "https://docs.flutter.dev"},
		{Week: 2, Topic: "Firebase", Description: "Wire up auth.", Resources: []string{}, Link: ""},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned RoadmapWeeks
	require.NoError(t, scanned.Scan(value))

	assert.Equal(t, original, scanned)
}
