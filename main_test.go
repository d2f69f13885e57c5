package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCut(t *testing.T, args []string, input string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(input), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	const words = "first second third fourth fifth\n"

	tests := []struct {
		name  string
		args  []string
		input string
		want  string
	}{
		{"single field", []string{"-d", ",", "-f", "0"}, "a,b,c\n1,2,3\n", "a\n1\n"},
		{"default delimiter", []string{"-f", "1"}, "a\tb\tc\n", "b\n"},
		{"open start", []string{"-c", ":3"}, "abcde\n", "abc\n"},
		{"negative end", []string{"-b", "1:-1"}, "abcde\n", "bcd\n"},
		{"negative start", []string{"-d", " ", "--fields=-4:-1:2"}, words, "second fourth\n"},
		{"attached short value", []string{"-d", " ", "-f-4:-1:2"}, words, "second fourth\n"},
		{"complement", []string{"-d", " ", "-f", "0:3", "--complement"}, words, "fourth fifth\n"},
		{"non-ascii bytes", []string{"-b", "0:3", "--output-delimiter", " "}, "h\xc3\x80\n", "h 0xc3 0x80\n"},
		{"graphemes", []string{"-g", "::-1"}, "n\u00e9e\n", "e\u00e9n\n"},
		{"multiple ranges", []string{"-d", ",", "-f", "0,2:", "--output-delimiter", "|"}, "a,b,c,d\n", "a|c|d\n"},
		{"invalid range", []string{"-c", "1:2:3:4"}, "abc\nde\n", "invalid range\ninvalid range\n"},
		{"only delimited", []string{"-s", "-d", ",", "-f", "0"}, "abc\nx,y\n", "x\n"},
		{"zero terminated", []string{"-z", "-c", "0"}, "ab\x00cd\x00", "a\x00c\x00"},
		{"stdin dash", []string{"-c", "0", "-"}, "xy\n", "x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCut(t, tt.args, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRunUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"-b", "0", "-c", "0"},
		{"-b", "0", "-d", ","},
		{"-c", "0", "-s"},
		{"-f", "0", "-d", ""},
		{"-f", "0", "--log-format", "xml"},
		{"--unknown"},
	} {
		_, _, err := runCut(t, args, "")
		assert.Error(t, err, strings.Join(args, " "))
	}
}

func TestRunHelp(t *testing.T) {
	out, _, err := runCut(t, []string{"--help"}, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--complement")
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")
	require.NoError(t, os.WriteFile(first, []byte("a,b\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("c,d,e\n"), 0o644))

	out, _, err := runCut(t, []string{"-d", ",", "--fields=-1:", first, second}, "")
	require.NoError(t, err)
	assert.Equal(t, "b\ne\n", out)

	out, _, err = runCut(t, []string{"-d", ",", "-f", "0", filepath.Join(dir, "missing"), second}, "")
	assert.Error(t, err)
	assert.Equal(t, "c\n", out)
}

func TestRunVerboseLogs(t *testing.T) {
	_, stderr, err := runCut(t, []string{"-v", "--log-format", "json", "-c", "x"}, "abc\n")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"cutting"`)
	assert.Contains(t, stderr, `"msg":"range list rejected"`)
}
