package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}

	path := filepath.Join(t.TempDir(), "plan.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXLoaderLoad(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Course", "Module", "Topics", "colab_link", "Hours"},
		{"Python", 1, "Syntax", "https://colab/py1", 1.5},
		{"Python", 2, "Functions", "", ""},
		{"Stats", "A", "Distributions"},
	})

	modules, err := NewXLSXLoader(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, modules, 3)

	assert.Equal(t, "Python - 1", modules[0].Label())
	assert.Equal(t, 1.5, modules[0].Weight)
	assert.Equal(t, "https://colab/py1", modules[0].ColabLink)
	assert.Equal(t, 1.0, modules[1].Weight)
	assert.Equal(t, "Stats - A", modules[2].Label())
}

func TestXLSXLoaderMissingFile(t *testing.T) {
	_, err := NewXLSXLoader(filepath.Join(t.TempDir(), "nope.xlsx")).Load(context.Background())
	assert.Error(t, err)
}

func TestXLSXLoaderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewXLSXLoader("unused.xlsx").Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
