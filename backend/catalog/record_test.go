package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	rows := [][]string{
		{"Course", "Module", "Topics", "colab_link", "Hours"},
		{"ML", "1", "Linear models", "https://colab/1", "2.5"},
		{"ML", "2", "Trees", "", ""},
		{"", "", ""},
		{"DL", "1", "Perceptrons", "", "NaN"},
		{"DL", "2", "CNNs"},
		{"DL", "3", "RNNs", "", "-4"},
	}

	modules, err := ParseRows(rows)
	require.NoError(t, err)
	require.Len(t, modules, 5)

	assert.Equal(t, "ML", modules[0].Course)
	assert.Equal(t, "1", modules[0].Module)
	assert.Equal(t, "https://colab/1", modules[0].ColabLink)
	assert.Equal(t, 2.5, modules[0].Weight)

	for _, m := range modules[1:] {
		assert.Equal(t, 1.0, m.Weight, m.Label())
	}
	assert.Equal(t, "", modules[3].ColabLink)
	assert.Equal(t, "DL - 3", modules[4].Label())
}

func TestParseRowsOptionalColumnsAbsent(t *testing.T) {
	modules, err := ParseRows([][]string{
		{"topics", " course ", "MODULE"},
		{"Intro", "Python", "M1"},
	})
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, "Python", modules[0].Course)
	assert.Equal(t, "M1", modules[0].Module)
	assert.Equal(t, "Intro", modules[0].Topics)
	assert.Equal(t, 1.0, modules[0].Weight)
}

func TestParseRowsErrors(t *testing.T) {
	_, err := ParseRows(nil)
	assert.Error(t, err)

	_, err = ParseRows([][]string{{"Course", "Topics"}})
	assert.ErrorContains(t, err, `"Module"`)

	_, err = ParseRows([][]string{
		{"Course", "Module", "Topics"},
		{"ML", "", "orphan topic"},
	})
	assert.ErrorContains(t, err, "row 2")

	_, err = ParseRows([][]string{
		{"Course", "Module", "Topics"},
		{"ML", "1", "a"},
		{"ML", "1", "b"},
	})
	assert.ErrorContains(t, err, "duplicate module")
}
