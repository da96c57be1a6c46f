package report

import "context"

type Service interface {
	// Build assembles the weekly schedule from the current roster.
	Build(ctx context.Context) (Report, error)
	// Export writes the schedule to an .xlsx workbook named after the
	// current date and returns the file name.
	Export(ctx context.Context) (ExportResponse, error)
}
