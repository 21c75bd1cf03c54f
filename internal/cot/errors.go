package cot

import "github.com/rotisserie/eris"

// Error kinds surfaced by the download pipeline. Match with errors.Is.
var (
	// ErrUnknownReportType marks a report type not present in the registry.
	ErrUnknownReportType = eris.New("cot: unknown report type")

	// ErrNoBundle marks a report type with no historical bundle configured.
	ErrNoBundle = eris.New("cot: no bundle archive configured")

	// ErrInvalidRange marks a year range whose start is after its end.
	ErrInvalidRange = eris.New("cot: start year must be <= end year")

	// ErrNoDataFile marks an archive containing no .txt or .csv entry.
	ErrNoDataFile = eris.New("cot: no .txt/.csv entry in archive")
)
