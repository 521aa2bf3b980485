// Package enrichment validates over-representation-analysis result files.
//
// A result file is a UTF-8, tab-separated .tsv with a fixed 8-column header.
// Validate checks the structure of the whole file and the typed-value and
// cross-field rules of every row, accumulating one human-readable error per
// violation rather than stopping at the first bad row. Only I/O-level
// failures abort the scan; validation-rule violations never do.
//
// Term Size and Query Size are not independent columns: both are derived
// from the raw Overlap field by splitting on '/', independently of whether
// the field matches the full 'a/b' pattern. Callers and tests depend on that
// derivation, so it is preserved as-is.
package enrichment

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Header is the exact column sequence a result file must carry on line 1.
var Header = []string{
	"Term", "Overlap", "P-value", "Odds Ratio", "Z-Score",
	"Combined Score", "Adjusted P-value", "Genes",
}

var (
	// overlapRE matches the 'a/b' overlap fraction, tolerating surrounding
	// whitespace around each integer.
	overlapRE = regexp.MustCompile(`^\s*(\d+)\s*/\s*(\d+)\s*$`)

	// geneTokenRE is permissive but disallows blanks and whitespace.
	geneTokenRE = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

// maxLineBytes bounds a single line during the scan. Result files are small;
// anything past this is a malformed input, reported as a read/parse failure.
const maxLineBytes = 16 * 1024 * 1024

// Validate reads the file at path and checks it against the result-file
// schema. The returned report carries every violation found, each tagged
// with its 1-based line number (the header is line 1).
//
// Abort-class failures (missing file, wrong extension, unreadable content,
// header mismatch) short-circuit with a single-element error list and no
// row-level results.
func Validate(path string) Report {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return invalid(fmt.Sprintf("File not found: %s", path))
	}
	if !strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return invalid(fmt.Sprintf("Not a .tsv file: %s", path))
	}

	f, err := os.Open(path)
	if err != nil {
		return invalid(fmt.Sprintf("Failed to read/parse file: %v", err))
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return invalid(fmt.Sprintf("Failed to read/parse file: %v", err))
		}
		return invalid(headerMismatch(nil))
	}
	if header := strings.Split(sc.Text(), "\t"); !slices.Equal(header, Header) {
		return invalid(headerMismatch(header))
	}

	var errs []string
	line := 1
	for sc.Scan() {
		line++
		validateRow(line, strings.Split(sc.Text(), "\t"), &errs)
	}
	if err := sc.Err(); err != nil {
		// A mid-scan read failure aborts: partial row results are dropped.
		return invalid(fmt.Sprintf("Failed to read/parse file: %v", err))
	}

	return finish(errs)
}

// validateRow applies every row-level check to one tokenised line, appending
// errors in check order. A column-count mismatch gates the whole row; a
// non-integer Term Size or Query Size gates only the relational checks
// (non-negativity, overlap consistency) - the float columns and the gene
// list are still checked.
func validateRow(line int, row []string, errs *[]string) {
	add := func(format string, args ...any) {
		*errs = append(*errs, fmt.Sprintf("Line %d: ", line)+fmt.Sprintf(format, args...))
	}

	if len(row) != len(Header) {
		add("expected %d columns, found %d.", len(Header), len(row))
		return
	}

	term, overlap := row[0], row[1]
	genes := row[7]

	if strings.TrimSpace(term) == "" {
		add("'Term' is empty.")
	}

	// Overlap 'a/b'
	var a, b int
	m := overlapRE.FindStringSubmatch(overlap)
	if m != nil {
		a, _ = strconv.Atoi(m[1])
		b, _ = strconv.Atoi(m[2])
	} else {
		add("'Overlap' must be of form 'a/b' with integers. Got '%s'.", overlap)
	}

	// Derived sizes come from a naive split of the raw field, whether or not
	// the pattern above matched.
	var querySizeRaw, termSizeRaw string
	if strings.Contains(overlap, "/") {
		parts := strings.Split(overlap, "/")
		querySizeRaw, termSizeRaw = parts[0], parts[1]
	}

	sizesOK := true
	for _, c := range []struct{ name, raw string }{
		{"Term Size", termSizeRaw},
		{"Query Size", querySizeRaw},
	} {
		if !isInt(c.raw) {
			add("'%s' must be an integer. Got '%s'.", c.name, c.raw)
			sizesOK = false
		}
	}

	if sizesOK {
		termSize := mustInt(termSizeRaw)
		querySize := mustInt(querySizeRaw)

		for _, c := range []struct {
			name string
			val  int
		}{
			{"Term Size", termSize},
			{"Query Size", querySize},
		} {
			if c.val < 0 {
				add("'%s' must be ≥ 0. Got %d.", c.name, c.val)
			}
		}

		// Overlap consistency only when the full pattern matched.
		if m != nil {
			if b != termSize {
				add("Overlap denominator (%d) != Term Size (%d).", b, termSize)
			}
			if a > b {
				add("Overlap numerator (%d) cannot exceed denominator (%d).", a, b)
			}
		}
	}

	// Score columns are independent: one failure never suppresses the rest.
	for _, c := range []struct{ name, raw string }{
		{"P-value", row[2]},
		{"Odds Ratio", row[3]},
		{"Z-Score", row[4]},
		{"Combined Score", row[5]},
		{"Adjusted P-value", row[6]},
	} {
		if !isFloat(c.raw) {
			add("'%s' must be numeric (supports scientific notation). Got '%s'.", c.name, c.raw)
		}
	}

	// Genes: ';'-separated tokens, trimmed, no empties, restricted charset.
	tokens := strings.Split(genes, ";")
	clean := true
	for i, g := range tokens {
		tokens[i] = strings.TrimSpace(g)
		if tokens[i] == "" {
			clean = false
		}
	}
	if len(tokens) == 0 || !clean {
		add("'Genes' must be a ';'-separated list with no empty entries.")
		return
	}
	for _, g := range tokens {
		if !geneTokenRE.MatchString(g) {
			add("gene token '%s' contains invalid characters.", g)
		}
	}
}

// headerMismatch formats the single abort-class error for a bad first line.
// found is nil when the file has no lines at all.
func headerMismatch(found []string) string {
	return fmt.Sprintf("Header mismatch.\nExpected: %s\nFound:    %s",
		headerString(Header), headerString(found))
}

func headerString(cols []string) string {
	if cols == nil {
		return "(none)"
	}
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = strconv.Quote(c)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// isInt reports whether s parses as an integer after trimming surrounding
// whitespace. Signs are accepted; the derived sizes are range-checked later.
func isInt(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}

func mustInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

// isFloat reports whether s parses as a finite float. Scientific notation is
// accepted; values parsing to +/-Inf or NaN are rejected, as are literals
// like "inf" and "nan" that strconv would otherwise admit.
func isFloat(s string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return false
	}
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
