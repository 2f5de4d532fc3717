package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"oilfield-dashboard-api/internal/binding"
	"oilfield-dashboard-api/internal/catalog"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"

	sheetName = "Report"
)

var ErrUnknownSource = errors.New("unknown data source")
var ErrWidgetNotConfigured = errors.New("widget has no data configuration")

// ReportService renders widget datasets and raw catalog sources as
// downloadable spreadsheets. Format is "xlsx" (default) or "csv".
type ReportService struct {
	Catalog  catalog.CatalogServiceAPI
	Store    binding.ConfigStoreAPI
	Resolver binding.ResolverAPI
}

// WidgetReport exports a configured widget's resolved dataset. Columns follow
// the widget's mapping order, headed by display names.
func (rs *ReportService) WidgetReport(ctx context.Context, widgetID, format string) (contentType, filename string, out []byte, err error) {
	cfg, ok := rs.Store.Get(widgetID)
	if !ok {
		return "", "", nil, ErrWidgetNotConfigured
	}

	rows, err := rs.Resolver.Resolve(ctx, cfg)
	if err != nil {
		return "", "", nil, err
	}

	headers := make([]string, 0, len(cfg.Mappings))
	fields := make([]string, 0, len(cfg.Mappings))
	for _, m := range cfg.Mappings {
		if m.SourceColumn == "" {
			continue
		}
		header := m.DisplayName
		if header == "" {
			header = m.WidgetField
		}
		headers = append(headers, header)
		fields = append(fields, m.WidgetField)
	}

	return render(fmt.Sprintf("widget-%s-report", widgetID), format, headers, fields, rows)
}

// SourceReport exports a catalog source's full dataset in its catalog column
// order.
func (rs *ReportService) SourceReport(ctx context.Context, sourceID, format string) (contentType, filename string, out []byte, err error) {
	cols, err := rs.Catalog.Columns(ctx, sourceID)
	if err != nil {
		return "", "", nil, err
	}
	if len(cols) == 0 {
		return "", "", nil, ErrUnknownSource
	}

	rows, err := rs.Catalog.Rows(ctx, sourceID)
	if err != nil {
		return "", "", nil, err
	}

	headers := make([]string, 0, len(cols))
	fields := make([]string, 0, len(cols))
	for _, col := range cols {
		headers = append(headers, col.Name)
		fields = append(fields, col.Name)
	}

	return render(fmt.Sprintf("%s-report", sourceID), format, headers, fields, rows)
}

func render(basename, format string, headers, fields []string, rows []catalog.Row) (string, string, []byte, error) {
	if format == "csv" {
		out, err := renderCSV(headers, fields, rows)
		if err != nil {
			return "", "", nil, err
		}
		return contentTypeCSV, basename + ".csv", out, nil
	}

	out, err := renderXLSX(headers, fields, rows)
	if err != nil {
		return "", "", nil, err
	}
	return contentTypeXLSX, basename + ".xlsx", out, nil
}

func renderCSV(headers, fields []string, rows []catalog.Row) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		record := make([]string, len(fields))
		for i, f := range fields {
			if v, ok := row[f]; ok {
				record[i] = fmt.Sprint(v)
			}
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderXLSX(headers, fields []string, rows []catalog.Row) ([]byte, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})

	headerCells := make([]interface{}, len(headers))
	for i, h := range headers {
		headerCells[i] = excelize.Cell{Value: h, StyleID: headerStyle}
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerCells); err != nil {
		return nil, fmt.Errorf("write xlsx header: %w", err)
	}

	for i, row := range rows {
		record := make([]interface{}, len(fields))
		for j, field := range fields {
			record[j] = row[field]
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", i+2), &record); err != nil {
			return nil, fmt.Errorf("write xlsx row: %w", err)
		}
	}

	b, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
