package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"NewsScraper/internal/domain"
	"NewsScraper/internal/ports"
)

const (
	defaultSheet  = "Sheet1"
	maxSheetRunes = 31
	// sheetNameCutset lists characters a sheet tab cannot hold.
	sheetNameCutset = `:\/?*[]`
)

// FileWriter stores a report as a spreadsheet plus an HTML text file.
type FileWriter struct {
	dir string
}

var _ ports.ReportWriter = (*FileWriter)(nil)

// NewFileWriter writes into dir, creating it on demand.
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

// Write saves <base>.xlsx and <base>.txt and returns their paths.
func (w *FileWriter) Write(ctx context.Context, report domain.Report) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	base := strings.TrimSpace(report.BaseName)
	if base == "" {
		return nil, fmt.Errorf("report base name is empty")
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	xlsxPath := filepath.Join(w.dir, base+".xlsx")
	if err := writeWorkbook(xlsxPath, sheetName(report.SheetName), report.Table); err != nil {
		return nil, err
	}

	txtPath := filepath.Join(w.dir, base+".txt")
	if err := os.WriteFile(txtPath, []byte(report.HTML), 0o644); err != nil {
		return nil, fmt.Errorf("write html: %w", err)
	}

	return []string{xlsxPath, txtPath}, nil
}

func writeWorkbook(path, sheet string, table [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("name sheet: %w", err)
		}
	}

	for i, row := range table {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(sheetNameCutset, r) {
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	if runes := []rune(name); len(runes) > maxSheetRunes {
		name = string(runes[:maxSheetRunes])
	}
	if name == "" {
		return defaultSheet
	}
	return name
}
