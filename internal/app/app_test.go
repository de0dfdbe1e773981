package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ranges.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestRun(t *testing.T) {
	cases := map[string]struct {
		input    string
		expected string
	}{
		"EmptyFile": {
			input:    "",
			expected: "No output ranges were created.\n",
		},
		"Disjoint": {
			input:    "[94133,94133]\n[94200,94299]\n[94600,94699]\n",
			expected: "[94133,94133]\n[94200,94299]\n[94600,94699]\n",
		},
		"Overlap": {
			input:    "[94133,94133]\n[94200,94299]\n[94226,94399]\n",
			expected: "[94133,94133]\n[94200,94399]\n",
		},
		"SkipsBadLines": {
			input:    "[aaaaa,94133]\n[-11111,94133]\n[94226,94399]\n[00501,00544]\n[94200,94299]\n",
			expected: "[00501,00544]\n[94200,94399]\n",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := NewConfig(Config{InputPath: writeInput(t, tc.input), Debug: true})
			require.NoError(t, err)

			out := &bytes.Buffer{}
			ctx := logr.NewContext(context.Background(), testr.NewWithOptions(t, testr.Options{Verbosity: 1}))
			require.NoError(t, NewApp(out, cfg).Run(ctx))
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	cfg, err := NewConfig(Config{InputPath: filepath.Join(t.TempDir(), "nope.txt")})
	require.NoError(t, err)

	err = NewApp(&bytes.Buffer{}, cfg).Run(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunSelfTest(t *testing.T) {
	cfg, err := NewConfig(Config{SelfTest: true, TempDir: t.TempDir()})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	require.NoError(t, NewApp(out, cfg).Run(context.Background()))
	assert.Contains(t, out.String(), "== Running test 5 ==")
	assert.NotContains(t, out.String(), "FAILED TEST")
}

func TestRunInputAfterFailedSelfTest(t *testing.T) {
	cfg, err := NewConfig(Config{
		SelfTest:  true,
		TempDir:   filepath.Join(t.TempDir(), "missing"),
		InputPath: writeInput(t, "[94200,94299]\n[94226,94399]\n"),
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	err = NewApp(out, cfg).Run(context.Background())
	assert.ErrorContains(t, err, "cannot create test file")
	assert.Equal(t, "[94200,94399]\n", out.String())
}

func TestNewConfig(t *testing.T) {
	cases := map[string]struct {
		config      Config
		expectedErr bool
	}{
		"Defaults":     {config: Config{InputPath: "x"}},
		"SelfTestOnly": {config: Config{SelfTest: true}},
		"JSON":         {config: Config{InputPath: "x", LogFormat: "json"}},
		"BadFormat":    {config: Config{InputPath: "x", LogFormat: "xml"}, expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := NewConfig(tc.config)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, cfg.LogFormat)
		})
	}
}
