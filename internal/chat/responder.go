package chat

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"oilfield-dashboard-api/internal/catalog"
)

// Responder produces the assistant's reply to a user message. The service is
// a transport shim only; whatever intelligence exists lives behind this port.
type Responder interface {
	Reply(ctx context.Context, message string) (string, error)
}

// KeywordResponder is the built-in offline responder: a small keyword table
// answered from the wells catalog. It stands in where a real assistant
// backend would be plugged.
type KeywordResponder struct {
	Catalog catalog.CatalogServiceAPI
}

const wellsSourceID = "wells_table"

func (kr *KeywordResponder) Reply(ctx context.Context, message string) (string, error) {
	q := strings.ToLower(message)

	switch {
	case strings.Contains(q, "active well"):
		return kr.wellsByStatus(ctx, "Active")
	case strings.Contains(q, "alert") || strings.Contains(q, "critical") || strings.Contains(q, "warning"):
		return kr.wellsByStatus(ctx, "Warning")
	case strings.Contains(q, "efficiency") || strings.Contains(q, "top") || strings.Contains(q, "best"):
		return kr.topPerformers(ctx)
	case strings.Contains(q, "report") || strings.Contains(q, "export"):
		return "You can export today's production report from the Reports section, as a spreadsheet or CSV.", nil
	default:
		return "I can show active wells, critical alerts, top performers, or help you export a report. What would you like?", nil
	}
}

func (kr *KeywordResponder) wellsByStatus(ctx context.Context, status string) (string, error) {
	rows, err := kr.Catalog.Rows(ctx, wellsSourceID)
	if err != nil {
		return "", err
	}

	var names []string
	for _, row := range rows {
		if row["status"] == status {
			if name, ok := row["wellName"].(string); ok {
				names = append(names, name)
			}
		}
	}

	if len(names) == 0 {
		if status == "Warning" {
			return "No wells are raising alerts right now.", nil
		}
		return fmt.Sprintf("No wells are currently %s.", strings.ToLower(status)), nil
	}
	if status == "Warning" {
		return fmt.Sprintf("%d well(s) need attention: %s.", len(names), strings.Join(names, ", ")), nil
	}
	return fmt.Sprintf("%d well(s) are active: %s.", len(names), strings.Join(names, ", ")), nil
}

func (kr *KeywordResponder) topPerformers(ctx context.Context) (string, error) {
	rows, err := kr.Catalog.Rows(ctx, wellsSourceID)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "No well data is available.", nil
	}

	type perf struct {
		name       string
		efficiency float64
	}
	perfs := make([]perf, 0, len(rows))
	for _, row := range rows {
		name, _ := row["wellName"].(string)
		perfs = append(perfs, perf{name: name, efficiency: asFloat(row["efficiency"])})
	}
	sort.Slice(perfs, func(i, j int) bool { return perfs[i].efficiency > perfs[j].efficiency })

	top := perfs
	if len(top) > 3 {
		top = top[:3]
	}
	parts := make([]string, 0, len(top))
	for _, p := range top {
		parts = append(parts, fmt.Sprintf("%s (%.0f%%)", p.name, p.efficiency))
	}
	return "Top performers by efficiency: " + strings.Join(parts, ", ") + ".", nil
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}
