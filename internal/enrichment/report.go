// report.go defines the validation report returned to callers.
//
// Separated from validate.go to keep the scan logic free of presentation
// concerns. The report is the complete outcome of one validation pass:
// callers never receive a partial or streamed result.

package enrichment

// Report is the outcome of validating one file. Valid is true iff Errors is
// empty. Errors preserves discovery order: line order first, then the order
// of checks within a line.
type Report struct {
	Valid  bool     `json:"is_valid"`
	Errors []string `json:"errors"`
}

// invalid builds an abort-class report carrying a single error.
func invalid(msg string) Report {
	return Report{Valid: false, Errors: []string{msg}}
}

// finish derives the validity flag from the accumulated errors.
func finish(errs []string) Report {
	return Report{Valid: len(errs) == 0, Errors: errs}
}
