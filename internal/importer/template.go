package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// 템플릿 헤더와 예시 행
var templateHeaders = []string{"항목", "단가", "수량", "비고", "업체", "email", "phone", "site", "address"}

var templateSample = [][]string{
	{"장소 대관", "500000", "1", "1일 기준", "A 컨벤션", "sales@a.co", "02-000-0000", "https://a.co", "서울시 ○○구 ○○로 12"},
	{"강사료", "800000", "1", "부가세 포함", "홍길동", "", "", "", ""},
	{"디자인", "300000", "1", "배너/안내물", "디자인랩", "hello@design.com", "", "https://design.com", ""},
}

// WriteTemplateCSV CSV 템플릿 쓰기 (엑셀 호환을 위해 UTF-8 BOM 선행)
func WriteTemplateCSV(w io.Writer) error {
	if _, err := w.Write([]byte("\uFEFF")); err != nil {
		return fmt.Errorf("failed to write bom: %w", err)
	}
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(templateHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range templateSample {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// BuildTemplateXLSX XLSX 템플릿 생성 (열 너비를 내용에 맞춰 조정)
func BuildTemplateXLSX() (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Budget"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	all := append([][]string{templateHeaders}, templateSample...)
	for r, row := range all {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	// 열 너비: 가장 긴 내용 기준 10~30
	for c := range templateHeaders {
		maxLen := 0
		for _, row := range all {
			if c < len(row) && len([]rune(row[c])) > maxLen {
				maxLen = len([]rune(row[c]))
			}
		}
		width := float64(maxLen) * 1.2
		if width < 10 {
			width = 10
		}
		if width > 30 {
			width = 30
		}
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}
	return f, nil
}
