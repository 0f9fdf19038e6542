package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_OnlyChangedFlagsOverride(t *testing.T) {
	opts, err := parseFlags([]string{"--rows", "42", "--buffer-rows=0", "-i", "names.txt"}, io.Discard)
	require.NoError(t, err)

	require.NotNil(t, opts.overrides.Rows)
	assert.Equal(t, 42, *opts.overrides.Rows)
	require.NotNil(t, opts.overrides.BufferRows)
	assert.Equal(t, 0, *opts.overrides.BufferRows)
	assert.Nil(t, opts.overrides.RowHeight)
	assert.Nil(t, opts.overrides.Theme)
	assert.Equal(t, "names.txt", opts.input)
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := parseFlags([]string{"--bogus"}, io.Discard)
	assert.Error(t, err)

	_, err = parseFlags([]string{"extra"}, io.Discard)
	assert.ErrorContains(t, err, "unexpected argument")

	_, err = parseFlags([]string{"--help"}, io.Discard)
	assert.ErrorIs(t, err, errHelp)
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"--version"}, &out, io.Discard, nil)
	assert.Equal(t, 0, code)
	assert.Equal(t, "shytable "+version+"\n", out.String())
}

func TestRun_InvalidConfigExits(t *testing.T) {
	var errOut bytes.Buffer
	env := map[string]string{"XDG_CONFIG_HOME": t.TempDir()}
	code := run([]string{"--row-height", "0"}, io.Discard, &errOut, env)
	assert.Equal(t, 1, code)
	assert.True(t, strings.Contains(errOut.String(), "row_height"), errOut.String())
}

func TestRun_MissingConfigFile(t *testing.T) {
	var errOut bytes.Buffer
	code := run([]string{"--config", filepath.Join(t.TempDir(), "none.json")}, io.Discard, &errOut, nil)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "config file not found")
}

func TestRun_BadFlag(t *testing.T) {
	code := run([]string{"--rows", "many"}, io.Discard, io.Discard, nil)
	assert.Equal(t, 2, code)
}
