package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifyByCode(t *testing.T) {
	id := NewIdentifier()

	name, ok := id.Identify("Branch: Connaught Place IFSC: HDFC0001234", nil)
	require.True(t, ok)
	assert.Equal(t, "HDFC Bank", name)
}

func TestCodeBeatsName(t *testing.T) {
	// The text names one bank but carries another bank's institution
	// code; the code wins.
	id := NewIdentifier()

	name, ok := id.Identify("Axis Bank Statement of Account IFSC: ICIC0004567", nil)
	require.True(t, ok)
	assert.Equal(t, "ICICI Bank", name)
}

func TestIdentifyByPriorityKeyword(t *testing.T) {
	id := NewIdentifier()

	name, ok := id.Identify("Statement of Account\nKotak Mahindra Bank Ltd\nMG Road Branch", nil)
	require.True(t, ok)
	assert.Contains(t, name, "Kotak")
}

func TestIdentifyNothing(t *testing.T) {
	id := NewIdentifier()

	_, ok := id.Identify("Monthly summary of activity", nil)
	assert.False(t, ok)
}

func TestExtractCode(t *testing.T) {
	assert.Equal(t, "SBIN0001111", ExtractCode("IFSC Code: SBIN0001111 MICR: 110002087"))
	assert.Empty(t, ExtractCode("no code here"))
}

func TestFromCode(t *testing.T) {
	assert.Equal(t, "Canara Bank", FromCode("CNRB0000456"))
	assert.Empty(t, FromCode("ZZZZ0000001"))
}

func TestClassifyProfiles(t *testing.T) {
	ps := DefaultProfiles()

	tests := []struct {
		name   string
		layout Layout
		parser string
	}{
		{"Axis Bank", LayoutBordered, ""},
		{"HDFC Bank", LayoutBorderless, ""},
		{"Kotak Mahindra Bank", LayoutBorderless, ""},
		{"The Jammu and Kashmir Bank", LayoutCustom, "jammu-kashmir"},
		{"Indian Bank", LayoutCustom, "indian"},
		{"Canara Bank", LayoutCustom, "canara"},
	}

	for _, tt := range tests {
		profile, ok := ps.Classify(tt.name)
		require.True(t, ok, tt.name)
		assert.Equal(t, tt.layout, profile.Layout, tt.name)
		assert.Equal(t, tt.parser, profile.Parser, tt.name)
	}
}

func TestIndianOverseasIsNotIndianBank(t *testing.T) {
	ps := DefaultProfiles()

	profile, ok := ps.Classify("Indian Overseas Bank")
	require.True(t, ok)
	assert.Equal(t, LayoutBordered, profile.Layout)
	assert.Empty(t, profile.Parser)
}

func TestClassifyUnknownFallsBack(t *testing.T) {
	ps := DefaultProfiles()

	profile, ok := ps.Classify("Some Regional Bank")
	require.True(t, ok)
	assert.Equal(t, ps.DefaultLayout, profile.Layout)
	assert.Equal(t, "Some Regional Bank", profile.Canonical)
}
