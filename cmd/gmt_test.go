package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGMT(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		env := newTestEnv(t)
		path := env.write("sets.gmt", "Apoptosis\tprogrammed cell death\tTP53\tBAX\tCASP3\nDNA_Repair\t\tBRCA1\tBRCA2\n")

		out := env.run("gmt", path)
		env.equals(out, "VALID")
	})

	t.Run("duplicate terms exit nonzero", func(t *testing.T) {
		env := newTestEnv(t)
		path := env.write("sets.gmt", "Apoptosis\tdesc\tTP53\nApoptosis\tdesc\tBAX\n")

		out, err := env.runErr("gmt", path)
		require.Error(t, err)
		env.contains(out, "INVALID")
		env.contains(out, "duplicate term")
	})

	t.Run("wrong extension", func(t *testing.T) {
		env := newTestEnv(t)
		path := env.write("sets.txt", "Apoptosis\tdesc\tTP53\n")

		out, err := env.runErr("gmt", path)
		require.Error(t, err)
		env.contains(out, "Not a .gmt file:")
	})
}
