// Package gmt validates gene-set library files in GMT format.
//
// A GMT file carries one gene set per line: a term name, a description
// (often empty), then one gene per tab-separated cell. Enrichr exports pad
// lines with trailing tabs, so empty cells at the end of the gene list are
// tolerated; empty cells between genes are not.
//
// Validation follows the result-file validator's contract: structural
// problems accumulate as line-numbered errors, and only I/O-level failures
// abort the scan.
package gmt

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"oracheck/internal/enrichment"
)

// geneTokenRE matches the same identifier charset as the result-file
// validator's gene column.
var geneTokenRE = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Enrichr GMT lines can be very long (thousands of genes per term).
const maxLineBytes = 64 * 1024 * 1024

// Set is one parsed gene-set line.
type Set struct {
	Term        string
	Description string
	Genes       []string
}

// Validate reads the GMT file at path and checks every line, accumulating
// errors tagged with 1-based line numbers. GMT files have no header, so the
// first data line is line 1.
func Validate(path string) enrichment.Report {
	_, report := Parse(path)
	return report
}

// Parse reads and validates the GMT file at path, returning the gene sets
// it could parse alongside the validation report. Lines with errors are
// excluded from the returned sets.
func Parse(path string) ([]Set, enrichment.Report) {
	abort := func(msg string) ([]Set, enrichment.Report) {
		return nil, enrichment.Report{Valid: false, Errors: []string{msg}}
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return abort(fmt.Sprintf("File not found: %s", path))
	}
	if !strings.HasSuffix(strings.ToLower(path), ".gmt") {
		return abort(fmt.Sprintf("Not a .gmt file: %s", path))
	}

	f, err := os.Open(path)
	if err != nil {
		return abort(fmt.Sprintf("Failed to read/parse file: %v", err))
	}
	defer f.Close()

	var (
		sets []Set
		errs []string
		seen = map[string]int{} // term -> first line
		line int
	)

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		line++
		if sc.Text() == "" {
			// Blank trailing lines are common in exported files.
			continue
		}
		set, lineErrs := validateLine(line, strings.Split(sc.Text(), "\t"), seen)
		errs = append(errs, lineErrs...)
		if len(lineErrs) == 0 {
			sets = append(sets, set)
		}
	}
	if err := sc.Err(); err != nil {
		return abort(fmt.Sprintf("Failed to read/parse file: %v", err))
	}
	if line == 0 {
		return abort(fmt.Sprintf("Empty .gmt file: %s", path))
	}

	return sets, enrichment.Report{Valid: len(errs) == 0, Errors: errs}
}

// validateLine checks one tokenised GMT line. seen maps terms to the line
// that introduced them, for duplicate detection across the file.
func validateLine(line int, cells []string, seen map[string]int) (Set, []string) {
	var errs []string
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf("Line %d: ", line)+fmt.Sprintf(format, args...))
	}

	if len(cells) < 3 {
		add("expected at least 3 columns (term, description, genes), found %d.", len(cells))
		return Set{}, errs
	}

	term := strings.TrimSpace(cells[0])
	if term == "" {
		add("term is empty.")
	} else if first, dup := seen[term]; dup {
		add("duplicate term '%s' (first seen on line %d).", term, first)
	} else {
		seen[term] = line
	}

	desc := strings.TrimSpace(cells[1])

	// Trailing empty cells are padding; stop at the last non-empty one.
	cells = cells[2:]
	last := len(cells)
	for last > 0 && strings.TrimSpace(cells[last-1]) == "" {
		last--
	}
	cells = cells[:last]

	if len(cells) == 0 {
		add("gene set '%s' has no genes.", term)
		return Set{}, errs
	}

	genes := make([]string, 0, len(cells))
	for _, g := range cells {
		g = strings.TrimSpace(g)
		if g == "" {
			add("empty gene cell between genes in set '%s'.", term)
			continue
		}
		if !geneTokenRE.MatchString(g) {
			add("gene token '%s' contains invalid characters.", g)
			continue
		}
		genes = append(genes, g)
	}

	if len(errs) > 0 {
		return Set{}, errs
	}
	return Set{Term: term, Description: desc, Genes: genes}, nil
}
