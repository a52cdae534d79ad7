package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	writes []string
	err    error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, text)
	return nil
}

type harness struct {
	stdout, stderr bytes.Buffer
	clip           fakeClipboard
}

func (h *harness) run(args ...string) int {
	return execute(env{
		stdout:     &h.stdout,
		stderr:     &h.stderr,
		clipboard:  &h.clip,
		isTerminal: func() bool { return false },
	}, args)
}

func TestDefaultWords(t *testing.T) {
	var h harness
	require.Equal(t, 0, h.run("--seed=words"))

	require.Len(t, h.clip.writes, 1)
	got := h.clip.writes[0]
	assert.Equal(t, got+"\n", h.stdout.String())

	words := strings.Split(got, " ")
	assert.Len(t, words, 5)
	assert.Greater(t, len(strings.Join(words, "")), 17)
}

func TestSeedIsReproducible(t *testing.T) {
	var a, b harness
	require.Equal(t, 0, a.run("--seed=same", "--long"))
	require.Equal(t, 0, b.run("--seed=same", "--long"))
	assert.Equal(t, a.clip.writes, b.clip.writes)
	assert.Len(t, strings.Fields(a.clip.writes[0]), 8)
}

func TestSyllablesLongBareSuffix(t *testing.T) {
	var h harness
	require.Equal(t, 0, h.run("--syll", "--long", "--suffix", "--seed=syll"))

	got := h.clip.writes[0]
	assert.True(t, strings.HasSuffix(got, "Q1!"), got)
	assert.NotContains(t, got, " ")
	assert.Greater(t, len(strings.TrimSuffix(got, "Q1!")), 27)
}

func TestSuffixValueAndSeparator(t *testing.T) {
	var h harness
	require.Equal(t, 0, h.run("--suffix=9z", "--sep=-", "--seed=sep"))

	parts := strings.Split(h.clip.writes[0], "-")
	require.Len(t, parts, 6)
	assert.Equal(t, "9z", parts[5])
}

func TestEmptySeparatorOverride(t *testing.T) {
	var h harness
	require.Equal(t, 0, h.run("--sep=", "--seed=nosep"))
	assert.NotContains(t, h.clip.writes[0], " ")
}

func TestQuiet(t *testing.T) {
	var h harness
	require.Equal(t, 0, h.run("--quiet", "--qr"))
	assert.Len(t, h.clip.writes, 1)
	assert.Empty(t, h.stdout.String())
}

func TestChunkCountExceedsPool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("oak pine frost"), 0o600))

	var h harness
	assert.Equal(t, 2, h.run("--words-file="+path))
	assert.Empty(t, h.clip.writes, "no clipboard write on configuration errors")
	assert.Empty(t, h.stdout.String())
	assert.Contains(t, h.stderr.String(), "invalid configuration")
}

func TestSmallWordsFileWarns(t *testing.T) {
	words := make([]string, 50)
	for i := range words {
		words[i] = fmt.Sprintf("token%02d", i)
	}
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")), 0o600))

	var h harness
	require.Equal(t, 0, h.run("--words-file="+path, "--seed=small"))
	assert.Len(t, h.clip.writes, 1)
	assert.Contains(t, h.stderr.String(), "pool is too small for this tier")
}

func TestEmbeddedWordsDoNotWarn(t *testing.T) {
	var h harness
	require.Equal(t, 0, h.run("--long"))
	assert.NotContains(t, h.stderr.String(), "too small")
}

func TestClipboardFailure(t *testing.T) {
	var h harness
	h.clip.err = errors.New("no display")
	assert.Equal(t, 1, h.run())
	assert.Empty(t, h.stdout.String())
	assert.Contains(t, h.stderr.String(), "clipboard write failed: no display")
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"extra"},
		{"--no-such-flag"},
		{"--words-file=/does/not/exist"},
		// Value form of --suffix requires '='.
		{"--suffix", "abc"},
	} {
		var h harness
		assert.Equal(t, 2, h.run(args...), "args %q", args)
		assert.Empty(t, h.clip.writes)
	}
}

func TestSelfTestFlag(t *testing.T) {
	var h harness
	require.Equal(t, 0, h.run("--self-test", "--seed=self"))
	assert.Contains(t, h.stdout.String(), "Failed: 0")
	assert.Empty(t, h.clip.writes)
}

func TestVersion(t *testing.T) {
	var h harness
	require.Equal(t, 0, h.run("--version"))
	assert.Equal(t, "passclip dev\n", h.stdout.String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(errSelfTest))
	assert.Equal(t, 2, exitCode(usageError{errors.New("x")}))
}
