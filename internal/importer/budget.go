// Package importer 예산표 가져오기.
// CSV/XLSX 첫 행을 헤더로 보고 한국어/영어 동의어를 표준 필드에 매핑한다.
// 인식 못 하는 헤더는 무시하고, 빈 행은 건너뛴다.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/leoavce/hrd-dashboard/internal/model"
)

// ErrUnsupportedFormat 지원하지 않는 확장자
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Row 가져온 예산 행 (문서 저장 전 중간 형태)
type Row struct {
	Name     string
	UnitCost float64
	Qty      float64
	Note     string
	Vendor   model.Vendor
}

// 헤더 동의어 → 표준 필드
var headerPatterns = []struct {
	field string
	re    *regexp.Regexp
}{
	{"name", regexp.MustCompile(`항목|품목|item|name`)},
	{"unitCost", regexp.MustCompile(`단가|금액|unit.?cost|price`)},
	{"qty", regexp.MustCompile(`수량|qty|quantity`)},
	{"note", regexp.MustCompile(`비고|메모|note|remark`)},
	{"vendor", regexp.MustCompile(`업체|공급처|vendor|company`)},
	{"email", regexp.MustCompile(`e-?mail|메일`)},
	{"phone", regexp.MustCompile(`phone|tel|전화`)},
	{"site", regexp.MustCompile(`site|url|website|웹사이트`)},
	{"addr", regexp.MustCompile(`address|addr|주소`)},
}

// HeaderField 헤더 문자열을 표준 필드명으로 매핑
// BOM 제거, 공백 정리, 소문자 비교. 미인식 헤더는 빈 문자열.
func HeaderField(h string) string {
	key := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(h, "\uFEFF", "")))
	if key == "" {
		return ""
	}
	for _, p := range headerPatterns {
		if p.re.MatchString(key) {
			return p.field
		}
	}
	return ""
}

// ParseFile 확장자에 따라 CSV 또는 XLSX 로 해석
func ParseFile(filename string, r io.Reader) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ParseCSV(r)
	case ".xlsx", ".xls":
		return ParseXLSX(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// ParseCSV CSV 예산표 해석 (UTF-8 BOM, 따옴표 허용)
func ParseCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var table [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		table = append(table, rec)
	}
	return fromTable(table), nil
}

// ParseXLSX 첫 시트를 예산표로 해석
func ParseXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return fromTable(rows), nil
}

// fromTable 첫 행을 헤더로 매핑하고 나머지를 행으로 변환
func fromTable(table [][]string) []Row {
	if len(table) == 0 {
		return nil
	}

	fields := make([]string, len(table[0]))
	for i, h := range table[0] {
		fields[i] = HeaderField(h)
	}

	var out []Row
	for _, cells := range table[1:] {
		if isEmptyRow(cells) {
			continue
		}
		var row Row
		for i, cell := range cells {
			if i >= len(fields) || fields[i] == "" {
				continue
			}
			cell = strings.TrimSpace(cell)
			switch fields[i] {
			case "name":
				row.Name = cell
			case "unitCost":
				row.UnitCost = parseAmount(cell)
			case "qty":
				row.Qty = parseAmount(cell)
			case "note":
				row.Note = cell
			case "vendor":
				row.Vendor.Name = cell
			case "email":
				row.Vendor.Email = cell
			case "phone":
				row.Vendor.Phone = cell
			case "site":
				row.Vendor.Site = cell
			case "addr":
				row.Vendor.Addr = cell
			}
		}
		out = append(out, row)
	}
	return out
}

// ToItems 가져온 행을 예산 아이템으로 변환 (소계 계산, id 부여)
func ToItems(rows []Row) []model.BudgetItem {
	items := make([]model.BudgetItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, model.BudgetItem{
			ID:       uuid.NewString(),
			Name:     r.Name,
			UnitCost: r.UnitCost,
			Qty:      r.Qty,
			Subtotal: r.UnitCost * r.Qty,
			Note:     r.Note,
			Vendor:   r.Vendor,
		})
	}
	return items
}

// parseAmount 통화 기호/천단위 구분 제거 후 숫자 해석 (실패 시 0)
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "₩", "")
	s = strings.ReplaceAll(s, "원", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
