// Package cot downloads CFTC Commitments of Traders historical archives,
// extracts the embedded data file, and loads it into an in-memory table.
// It also scrapes the Explanatory Notes glossary page.
//
// Zip naming follows the CFTC "Historical Compressed" page listings:
// year-based archives are <prefix><year>.zip under the dea/history path,
// older multi-year packages use fixed bundle filenames.
package cot

import (
	"fmt"
	"sort"

	"github.com/rotisserie/eris"
)

// DefaultBaseURL is the CFTC historical-compressed archive root.
const DefaultBaseURL = "https://www.cftc.gov/files/dea/history/"

// ReportType identifies one variant of the COT report.
type ReportType string

// Registered report types.
const (
	FinancialFuturesFut    ReportType = "traders_in_financial_futures_fut"
	FinancialFuturesFutOpt ReportType = "traders_in_financial_futures_futopt"
	DisaggregatedFut       ReportType = "disaggregated_fut"
	DisaggregatedFutOpt    ReportType = "disaggregated_futopt"
	LegacyFut              ReportType = "legacy_fut"
	LegacyFutOpt           ReportType = "legacy_futopt"
	SupplementalFutOpt     ReportType = "supplemental_futopt"
)

// ReportSpec defines how to build the zip filename for a report type.
type ReportSpec struct {
	// YearZipPrefix builds year archives, e.g. "fut_fin_txt_" -> fut_fin_txt_2026.zip.
	YearZipPrefix string

	// BundleZipFilename names the older multi-year package, empty if none exists.
	BundleZipFilename string
}

// reportSpecs is the static registry. Read-only after initialization.
var reportSpecs = map[ReportType]ReportSpec{
	// Traders in Financial Futures (TFF)
	FinancialFuturesFut: {
		YearZipPrefix:     "fut_fin_txt_",
		BundleZipFilename: "fin_fut_txt_2006_2016.zip",
	},
	FinancialFuturesFutOpt: {
		YearZipPrefix:     "com_fin_txt_",
		BundleZipFilename: "fin_com_txt_2006_2016.zip",
	},

	// Disaggregated
	DisaggregatedFut: {
		YearZipPrefix:     "fut_disagg_txt_",
		BundleZipFilename: "fut_disagg_txt_hist_2006_2016.zip",
	},
	DisaggregatedFutOpt: {
		YearZipPrefix:     "com_disagg_txt_",
		BundleZipFilename: "com_disagg_txt_hist_2006_2016.zip",
	},

	// Legacy & Supplemental (legacy naming differs; still year-addressable)
	LegacyFut: {
		YearZipPrefix:     "deacot",
		BundleZipFilename: "deacot1986_2016.zip",
	},
	LegacyFutOpt: {
		YearZipPrefix:     "deahistfo",
		BundleZipFilename: "deahistfo_1995_2016.zip",
	},
	SupplementalFutOpt: {
		YearZipPrefix:     "dea_cit_txt_",
		BundleZipFilename: "dea_cit_txt_2006_2016.zip",
	},
}

// ReportTypes returns all registered report types, sorted.
func ReportTypes() []ReportType {
	types := make([]ReportType, 0, len(reportSpecs))
	for rt := range reportSpecs {
		types = append(types, rt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Spec returns the registry entry for a report type.
func Spec(report ReportType) (ReportSpec, error) {
	spec, ok := reportSpecs[report]
	if !ok {
		return ReportSpec{}, eris.Wrapf(ErrUnknownReportType, "%q (valid: %v)", report, ReportTypes())
	}
	return spec, nil
}

// YearResource resolves the archive filename and URL for one report year.
// The year is not range-checked: the remote source is the authority on
// which years exist.
func YearResource(base string, report ReportType, year int) (string, string, error) {
	spec, err := Spec(report)
	if err != nil {
		return "", "", err
	}
	name := fmt.Sprintf("%s%d.zip", spec.YearZipPrefix, year)
	return name, base + name, nil
}

// BundleResource resolves the archive filename and URL for the multi-year
// historical bundle of a report type.
func BundleResource(base string, report ReportType) (string, string, error) {
	spec, err := Spec(report)
	if err != nil {
		return "", "", err
	}
	name, err := bundleName(spec)
	if err != nil {
		return "", "", eris.Wrapf(err, "report type %q", report)
	}
	return name, base + name, nil
}

// bundleName returns the bundle filename from a spec, or ErrNoBundle when
// the spec has none.
func bundleName(spec ReportSpec) (string, error) {
	if spec.BundleZipFilename == "" {
		return "", ErrNoBundle
	}
	return spec.BundleZipFilename, nil
}
