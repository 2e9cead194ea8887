package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestEncodeDecodeStringList(t *testing.T) {
	encoded := encodeStringList([]string{"A", "B, with comma", ""})
	assert.Equal(t, []string{"A", "B, with comma", ""}, decodeStringList(encoded))
}

func TestEncodeStringListNil(t *testing.T) {
	assert.Nil(t, encodeStringList(nil))
	assert.Equal(t, []string{}, decodeStringList(nil))
}

func TestEncodeStringListEmpty(t *testing.T) {
	encoded := encodeStringList([]string{})
	assert.Equal(t, []string{}, decodeStringList(encoded))
}

func TestDecodeStringListLegacyCommaFormat(t *testing.T) {
	// Rows written before the JSON migration hold raw comma-separated text.
	legacy := datatypes.JSON("A, B ,C")
	assert.Equal(t, []string{"A", "B", "C"}, decodeStringList(legacy))
}

func TestDecodeStringListLegacySingleValue(t *testing.T) {
	assert.Equal(t, []string{"A"}, decodeStringList(datatypes.JSON("A")))
}
