package config

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/bytehuff/container"
)

func envOf(env map[string]string) func(string) string {
	return func(key string) string { return env[key] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load([]string{"compress", "in", "out"}, envOf(nil), io.Discard)
	require.NoError(t, err)
	require.Equal(t, "compress", cfg.Command)
	require.Equal(t, []string{"in", "out"}, cfg.Args)
	require.Equal(t, container.Lengths, cfg.Format)
	require.Equal(t, 4, cfg.Jobs)
	require.Equal(t, 64, cfg.CacheSize)
	require.False(t, cfg.Verbose)
}

func TestLoad_Environment(t *testing.T) {
	env := envOf(map[string]string{"HUFFPACK_FORMAT": "frequencies", "HUFFPACK_JOBS": "9"})

	cfg, err := Load([]string{"roundtrip", "a", "b"}, env, io.Discard)
	require.NoError(t, err)
	require.Equal(t, container.Frequencies, cfg.Format)
	require.Equal(t, 9, cfg.Jobs)

	// flags win over the environment
	cfg, err = Load([]string{"-format", "lengths", "-jobs", "1", "-v", "roundtrip", "a"}, env, io.Discard)
	require.NoError(t, err)
	require.Equal(t, container.Lengths, cfg.Format)
	require.Equal(t, 1, cfg.Jobs)
	require.True(t, cfg.Verbose)
}

func TestLoad_Errors(t *testing.T) {
	type testRow struct {
		name string
		args []string
		env  map[string]string
	}

	testData := []testRow{
		{name: "no-command", args: nil},
		{name: "unknown-command", args: []string{"explode"}},
		{name: "compress-args", args: []string{"compress", "in"}},
		{name: "roundtrip-args", args: []string{"roundtrip"}},
		{name: "bad-format", args: []string{"-format", "zstd", "compress", "in", "out"}},
		{name: "bad-env-format", args: []string{"compress", "in", "out"}, env: map[string]string{"HUFFPACK_FORMAT": "zip"}},
		{name: "bad-env-jobs", args: []string{"compress", "in", "out"}, env: map[string]string{"HUFFPACK_JOBS": "many"}},
		{name: "negative-jobs", args: []string{"-jobs", "-1", "roundtrip", "a"}},
		{name: "negative-cache", args: []string{"-cache", "-1", "decompress", "in", "out"}},
		{name: "bad-flag", args: []string{"-nope", "compress", "in", "out"}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := Load(row.args, envOf(row.env), io.Discard)
			require.Error(t, err)
		})
	}
}
