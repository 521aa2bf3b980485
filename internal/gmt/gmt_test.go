package gmt_test

import (
	"os"
	"path/filepath"
	"testing"

	"oracheck/internal/gmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGMT(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse_ValidFile(t *testing.T) {
	path := writeGMT(t, "lib.gmt",
		"apoptosis\tGO:0006915\tTP53\tBAX\tCASP3\n"+
			"cell cycle\t\tCDK1\tCCNB1\t\t\n") // Enrichr-style trailing padding

	sets, report := gmt.Parse(path)
	assert.True(t, report.Valid)
	require.Len(t, sets, 2)
	assert.Equal(t, "apoptosis", sets[0].Term)
	assert.Equal(t, "GO:0006915", sets[0].Description)
	assert.Equal(t, []string{"TP53", "BAX", "CASP3"}, sets[0].Genes)
	assert.Equal(t, []string{"CDK1", "CCNB1"}, sets[1].Genes)
}

func TestValidate_AbortClass(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		report := gmt.Validate("nope.gmt")
		require.Len(t, report.Errors, 1)
		assert.Equal(t, "File not found: nope.gmt", report.Errors[0])
	})

	t.Run("wrong extension", func(t *testing.T) {
		path := writeGMT(t, "lib.txt", "a\t\tTP53\n")
		report := gmt.Validate(path)
		require.Len(t, report.Errors, 1)
		assert.Equal(t, "Not a .gmt file: "+path, report.Errors[0])
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeGMT(t, "lib.gmt", "")
		report := gmt.Validate(path)
		require.Len(t, report.Errors, 1)
		assert.Contains(t, report.Errors[0], "Empty .gmt file:")
	})
}

func TestValidate_LineErrors(t *testing.T) {
	path := writeGMT(t, "lib.gmt",
		"short line\tonly two cells\n"+ // line 1: < 3 columns
			"\t\tTP53\n"+ // line 2: empty term
			"apoptosis\t\tTP53\tBAX\n"+ // line 3: fine
			"apoptosis\t\tCASP3\n"+ // line 4: duplicate
			"no genes\t\t\t\n"+ // line 5: padding only
			"bad gap\t\tTP53\t\tBAX\n"+ // line 6: empty cell between genes
			"bad token\t\tTP@53\n") // line 7: invalid characters

	report := gmt.Validate(path)
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 6)
	assert.Equal(t, "Line 1: expected at least 3 columns (term, description, genes), found 2.", report.Errors[0])
	assert.Equal(t, "Line 2: term is empty.", report.Errors[1])
	assert.Equal(t, "Line 4: duplicate term 'apoptosis' (first seen on line 3).", report.Errors[2])
	assert.Equal(t, "Line 5: gene set 'no genes' has no genes.", report.Errors[3])
	assert.Equal(t, "Line 6: empty gene cell between genes in set 'bad gap'.", report.Errors[4])
	assert.Equal(t, "Line 7: gene token 'TP@53' contains invalid characters.", report.Errors[5])
}

func TestParse_ExcludesInvalidLines(t *testing.T) {
	path := writeGMT(t, "lib.gmt",
		"good\t\tTP53\n"+
			"bad\t\tTP@53\n")

	sets, report := gmt.Parse(path)
	assert.False(t, report.Valid)
	require.Len(t, sets, 1)
	assert.Equal(t, "good", sets[0].Term)
}
