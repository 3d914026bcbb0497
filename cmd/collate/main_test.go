package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := (&app{}).rootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeWitness(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestAlign_Table prints the table for plain and XML witnesses.
func TestAlign_Table(t *testing.T) {
	dir := t.TempDir()
	a := writeWitness(t, dir, "A.txt", "the black cat")
	b := writeWitness(t, dir, "B.xml", "<p>the <hi>white</hi> cat</p>")

	out, err := run(t, "align", a, b)
	require.NoError(t, err)
	assert.Equal(t, "A: the | black | cat\nB: the | white | cat\n", out)
}

// TestAlign_JSON reports passes.
func TestAlign_JSON(t *testing.T) {
	dir := t.TempDir()
	a := writeWitness(t, dir, "A.txt", "a b c")
	b := writeWitness(t, dir, "B.txt", "a c")

	out, err := run(t, "align", "--json", a, b)
	require.NoError(t, err)
	var doc struct {
		Passes []struct {
			Sigil  string `json:"sigil"`
			Linked int    `json:"linked"`
		} `json:"passes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Passes, 2)
	assert.Equal(t, "B", doc.Passes[1].Sigil)
	assert.Equal(t, 2, doc.Passes[1].Linked)
}

// TestAlign_Errors covers missing files, bad config and no arguments.
func TestAlign_Errors(t *testing.T) {
	_, err := run(t, "align", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = run(t, "align")
	assert.Error(t, err)

	cfg := writeWitness(t, t.TempDir(), "bad.yaml", "comparator: fuzzy\n")
	_, err = run(t, "--config", cfg, "version")
	assert.Error(t, err)
}

// TestAlign_ConfigComparator honours the configured comparator.
func TestAlign_ConfigComparator(t *testing.T) {
	dir := t.TempDir()
	cfg := writeWitness(t, dir, "c.toml", "comparator = \"strict\"\n")
	a := writeWitness(t, dir, "A.txt", "The cat")
	b := writeWitness(t, dir, "B.txt", "the cat")

	out, err := run(t, "--config", cfg, "align", a, b)
	require.NoError(t, err)
	assert.Equal(t, "A: The | cat\nB: the | cat\n", out)
}

// TestVersion prints the build version.
func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "collate "+version+"\n", out)
}

// TestServe_Shutdown stops on context cancellation.
func TestServe_Shutdown(t *testing.T) {
	a := &app{logger: slog.New(slog.DiscardHandler)}
	a.cfg.Store.InMemory = true

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	assert.NoError(t, a.serve(ctx, "127.0.0.1:0"))
}

// TestFormat renders groups and attributes.
func TestFormat(t *testing.T) {
	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "merged", 0)
	r.AddAttrs(slog.Int("tokens", 3))
	got := format(r.Message, []slog.Attr{slog.String("run.id", "x")}, []string{"run"}, r)
	assert.Equal(t, "merged run.id=x run.tokens=3", got)

	h := newKlogHandler().WithGroup("run").WithAttrs([]slog.Attr{slog.String("id", "x")})
	kh, ok := h.(*klogHandler)
	require.True(t, ok)
	assert.Equal(t, "run.id", kh.attrs[0].Key)
}
