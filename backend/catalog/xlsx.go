package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"studyplan/backend/models"
)

// XLSXLoader reads the catalog from the first sheet of a workbook.
type XLSXLoader struct {
	Path string
}

func NewXLSXLoader(path string) *XLSXLoader {
	return &XLSXLoader{Path: path}
}

func (l *XLSXLoader) Load(ctx context.Context) ([]models.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", l.Path, err)
	}
	defer f.Close()

	modules, err := readWorkbook(f)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", l.Path, err)
	}
	return modules, nil
}

// ReadXLSX parses a catalog workbook from r.
func ReadXLSX(r io.Reader) ([]models.Module, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readWorkbook(f)
}

func readWorkbook(f *excelize.File) ([]models.Module, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return ParseRows(rows)
}
