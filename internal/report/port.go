package report

import "context"

type ReportServiceAPI interface {
	WidgetReport(ctx context.Context, widgetID, format string) (contentType, filename string, out []byte, err error)
	SourceReport(ctx context.Context, sourceID, format string) (contentType, filename string, out []byte, err error)
}
