package enrichment_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"oracheck/internal/enrichment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Term\tOverlap\tP-value\tOdds Ratio\tZ-Score\tCombined Score\tAdjusted P-value\tGenes"

// writeTSV writes rows under a valid header and returns the file path.
func writeTSV(t *testing.T, rows ...string) string {
	t.Helper()
	lines := append([]string{header}, rows...)
	return writeFile(t, "results.tsv", strings.Join(lines, "\n")+"\n")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidate_ValidFile(t *testing.T) {
	path := writeTSV(t,
		"GO:1\t5/10\t0.01\t2.5\t3.1\t7.5\t0.02\tTP53;BRCA1",
		"GO:2\t1/42\t1e-5\t0.5\t-1.2\t3.9\t2.5E-4\tEGFR",
	)

	report := enrichment.Validate(path)
	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
}

func TestValidate_FileNotFound(t *testing.T) {
	report := enrichment.Validate("no/such/file.tsv")
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "File not found: no/such/file.tsv", report.Errors[0])
}

func TestValidate_DirectoryIsNotAFile(t *testing.T) {
	dir := t.TempDir()
	report := enrichment.Validate(dir)
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "File not found:")
}

func TestValidate_WrongExtension(t *testing.T) {
	path := writeFile(t, "results.csv", header+"\n")
	report := enrichment.Validate(path)
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "Not a .tsv file: "+path, report.Errors[0])
}

func TestValidate_ExtensionCaseInsensitive(t *testing.T) {
	path := writeFile(t, "results.TSV", header+"\nGO:1\t5/10\t0.01\t2.5\t3.1\t7.5\t0.02\tTP53\n")
	report := enrichment.Validate(path)
	assert.True(t, report.Valid)
}

func TestValidate_HeaderMismatch(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"wrong name", "Name\tOverlap\tP-value\tOdds Ratio\tZ-Score\tCombined Score\tAdjusted P-value\tGenes"},
		{"wrong order", "Overlap\tTerm\tP-value\tOdds Ratio\tZ-Score\tCombined Score\tAdjusted P-value\tGenes"},
		{"missing column", "Term\tOverlap\tP-value\tOdds Ratio\tZ-Score\tCombined Score\tAdjusted P-value"},
		{"extra column", header + "\tExtra"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Include a malformed data row to prove row checks never run.
			path := writeFile(t, "r.tsv", tc.header+"\nbad row\n")
			report := enrichment.Validate(path)
			assert.False(t, report.Valid)
			require.Len(t, report.Errors, 1)
			assert.Contains(t, report.Errors[0], "Header mismatch.")
			assert.Contains(t, report.Errors[0], "Expected:")
			assert.Contains(t, report.Errors[0], "Found:")
		})
	}
}

func TestValidate_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.tsv", "")
	report := enrichment.Validate(path)
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "Header mismatch.")
	assert.Contains(t, report.Errors[0], "(none)")
}

func TestValidate_ColumnCount(t *testing.T) {
	// 7 fields: the row is gated entirely, one error only.
	path := writeTSV(t, "GO:1\t5/10\t0.01\t2.5\t3.1\t7.5\t0.02")
	report := enrichment.Validate(path)
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "Line 2: expected 8 columns, found 7.", report.Errors[0])
}

func TestValidate_EmptyTerm(t *testing.T) {
	path := writeTSV(t, "  \t5/10\t0.01\t2.5\t3.1\t7.5\t0.02\tTP53")
	report := enrichment.Validate(path)
	assert.Contains(t, report.Errors, "Line 2: 'Term' is empty.")
}

func TestValidate_OverlapFormat(t *testing.T) {
	tests := []struct {
		name    string
		overlap string
		wantErr bool
	}{
		{"plain", "5/10", false},
		{"padded", " 5 / 10 ", false},
		{"missing slash", "510", true},
		{"negative numerator", "-5/10", true},
		{"float numerator", "5.0/10", true},
		{"empty", "", true},
		{"double slash", "1/2/3", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTSV(t, "GO:1\t"+tc.overlap+"\t0.01\t2.5\t3.1\t7.5\t0.02\tTP53")
			report := enrichment.Validate(path)
			msg := "Line 2: 'Overlap' must be of form 'a/b' with integers. Got '" + tc.overlap + "'."
			if tc.wantErr {
				assert.Contains(t, report.Errors, msg)
			} else {
				assert.NotContains(t, report.Errors, msg)
			}
		})
	}
}

// The derived sizes come from splitting the raw Overlap text on '/', even
// when the 'a/b' pattern did not match. '1/2/3' therefore yields a format
// error plus integer checks against '1' and '2' that pass.
func TestValidate_NaiveSplitDerivation(t *testing.T) {
	path := writeTSV(t, "GO:1\t1/2/3\t0.01\t2.5\t3.1\t7.5\t0.02\tTP53")
	report := enrichment.Validate(path)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "'Overlap' must be of form 'a/b'")
}

func TestValidate_SizesNotInteger(t *testing.T) {
	// No '/' at all: both derived sizes are unavailable.
	path := writeTSV(t, "GO:1\tnope\t0.01\t2.5\t3.1\t7.5\t0.02\tTP53")
	report := enrichment.Validate(path)
	assert.Contains(t, report.Errors, "Line 2: 'Term Size' must be an integer. Got ''.")
	assert.Contains(t, report.Errors, "Line 2: 'Query Size' must be an integer. Got ''.")
}

// A non-integer size gates the relational checks only: the float and gene
// checks on the same row still run and still report.
func TestValidate_SizeGatingDoesNotSuppressIndependentChecks(t *testing.T) {
	path := writeTSV(t, "GO:1\tx/y\tabc\t2.5\t3.1\t7.5\t0.02\tTP53;;BRCA1")
	report := enrichment.Validate(path)

	assert.Contains(t, report.Errors, "Line 2: 'Overlap' must be of form 'a/b' with integers. Got 'x/y'.")
	assert.Contains(t, report.Errors, "Line 2: 'Term Size' must be an integer. Got 'y'.")
	assert.Contains(t, report.Errors, "Line 2: 'Query Size' must be an integer. Got 'x'.")
	assert.Contains(t, report.Errors, "Line 2: 'P-value' must be numeric (supports scientific notation). Got 'abc'.")
	assert.Contains(t, report.Errors, "Line 2: 'Genes' must be a ';'-separated list with no empty entries.")
}

func TestValidate_NegativeSizes(t *testing.T) {
	// '-5/10' fails the pattern but the naive split still yields -5 and 10.
	path := writeTSV(t, "GO:1\t-5/10\t0.01\t2.5\t3.1\t7.5\t0.02\tTP53")
	report := enrichment.Validate(path)
	assert.Contains(t, report.Errors, "Line 2: 'Query Size' must be ≥ 0. Got -5.")
}

func TestValidate_NumeratorExceedsDenominator(t *testing.T) {
	ok := writeTSV(t, "GO:1\t7/10\t0.01\t2.5\t3.1\t7.5\t0.02\tTP53;BRCA1")
	report := enrichment.Validate(ok)
	assert.True(t, report.Valid)

	bad := writeTSV(t, "GO:1\t12/10\t0.01\t2.5\t3.1\t7.5\t0.02\tTP53;BRCA1")
	report = enrichment.Validate(bad)
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "Line 2: Overlap numerator (12) cannot exceed denominator (10).", report.Errors[0])
}

func TestValidate_NumericColumns(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"decimal", "0.05", true},
		{"scientific lower", "1e-5", true},
		{"scientific upper", "2.5E+3", true},
		{"leading dot", ".5", true},
		{"negative", "-3.1", true},
		{"word", "abc", false},
		{"empty", "", false},
		{"inf", "inf", false},
		{"negative inf", "-Inf", false},
		{"nan", "NaN", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTSV(t, "GO:1\t5/10\t"+tc.value+"\t2.5\t3.1\t7.5\t0.02\tTP53")
			report := enrichment.Validate(path)
			msg := "Line 2: 'P-value' must be numeric (supports scientific notation). Got '" + tc.value + "'."
			if tc.valid {
				assert.NotContains(t, report.Errors, msg)
			} else {
				assert.Contains(t, report.Errors, msg)
			}
		})
	}
}

// Each score column is checked independently: three bad columns mean three
// errors, in column order.
func TestValidate_NumericColumnsIndependent(t *testing.T) {
	path := writeTSV(t, "GO:1\t5/10\tabc\t2.5\tdef\t7.5\tghi\tTP53")
	report := enrichment.Validate(path)
	require.Len(t, report.Errors, 3)
	assert.Contains(t, report.Errors[0], "'P-value'")
	assert.Contains(t, report.Errors[1], "'Z-Score'")
	assert.Contains(t, report.Errors[2], "'Adjusted P-value'")
}

func TestValidate_Genes(t *testing.T) {
	listErr := "Line 2: 'Genes' must be a ';'-separated list with no empty entries."

	t.Run("embedded empty token", func(t *testing.T) {
		path := writeTSV(t, "GO:1\t5/10\t0.01\t2.5\t3.1\t7.5\t0.02\tTP53;;BRCA1")
		report := enrichment.Validate(path)
		require.Len(t, report.Errors, 1)
		assert.Equal(t, listErr, report.Errors[0])
	})

	t.Run("empty field", func(t *testing.T) {
		path := writeTSV(t, "GO:1\t5/10\t0.01\t2.5\t3.1\t7.5\t0.02\t")
		report := enrichment.Validate(path)
		assert.Contains(t, report.Errors, listErr)
	})

	t.Run("trailing separator", func(t *testing.T) {
		path := writeTSV(t, "GO:1\t5/10\t0.01\t2.5\t3.1\t7.5\t0.02\tTP53;")
		report := enrichment.Validate(path)
		assert.Contains(t, report.Errors, listErr)
	})

	t.Run("invalid characters per token", func(t *testing.T) {
		path := writeTSV(t, "GO:1\t5/10\t0.01\t2.5\t3.1\t7.5\t0.02\tTP53;BR CA1;MY@GENE")
		report := enrichment.Validate(path)
		require.Len(t, report.Errors, 2)
		assert.Equal(t, "Line 2: gene token 'BR CA1' contains invalid characters.", report.Errors[0])
		assert.Equal(t, "Line 2: gene token 'MY@GENE' contains invalid characters.", report.Errors[1])
	})

	t.Run("dots underscores hyphens allowed", func(t *testing.T) {
		path := writeTSV(t, "GO:1\t5/10\t0.01\t2.5\t3.1\t7.5\t0.02\tHLA-B;MT_CO1;LINC00115.2")
		report := enrichment.Validate(path)
		assert.True(t, report.Valid)
	})
}

func TestValidate_ErrorsAccumulateAcrossRows(t *testing.T) {
	path := writeTSV(t,
		"GO:1\t5/10\t0.01\t2.5\t3.1\t7.5\t0.02\tTP53",   // fine
		"\t5/10\t0.01\t2.5\t3.1\t7.5\t0.02\tTP53",       // empty term
		"GO:3\t12/10\t0.01\t2.5\t3.1\t7.5\t0.02\tTP53",  // numerator > denominator
		"GO:4\t5/10\t0.01\t2.5\t3.1\t7.5\t0.02",         // 7 columns
	)

	report := enrichment.Validate(path)
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 3)
	assert.Equal(t, "Line 3: 'Term' is empty.", report.Errors[0])
	assert.Equal(t, "Line 4: Overlap numerator (12) cannot exceed denominator (10).", report.Errors[1])
	assert.Equal(t, "Line 5: expected 8 columns, found 7.", report.Errors[2])
}

func TestValidate_Idempotent(t *testing.T) {
	path := writeTSV(t,
		"GO:1\tbad\t0.01\t2.5\t3.1\t7.5\t0.02\tTP53;;X",
		"GO:2\t5/10\tabc\t2.5\t3.1\t7.5\t0.02\tTP53",
	)

	first := enrichment.Validate(path)
	second := enrichment.Validate(path)
	assert.Equal(t, first, second)
}
