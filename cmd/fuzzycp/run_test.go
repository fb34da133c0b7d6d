package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfranzen/fuzzycp/pkg/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// setupRun builds a working directory with candidate files and a names file,
// returning a ready-to-mutate config.
func setupRun(t *testing.T, queries string, files ...string) *config.Config {
	t.Helper()
	workDir := t.TempDir()
	for _, f := range files {
		writeFile(t, filepath.Join(workDir, f), "content of "+f)
	}
	namesFile := filepath.Join(t.TempDir(), "names.txt")
	writeFile(t, namesFile, queries)

	return &config.Config{
		NamesFile: namesFile,
		WorkDir:   workDir,
		Threshold: config.DefaultThreshold,
	}
}

func TestRun_ListingResolvesNames(t *testing.T) {
	cfg := setupRun(t, "Jane Doe\n", "jane_doe_resume_2023.pdf", "random_file.txt")
	cfg.Output = "-"

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, strings.NewReader(""), &out))

	assert.Equal(t, "jane_doe_resume_2023.pdf\n", out.String(),
		"one kept row at the default threshold, the noise file never selected")
}

func TestRun_KeyGroupExpandsToAllOriginals(t *testing.T) {
	cfg := setupRun(t, "movie\n", "movie (2020).mkv", "movie (2020).mp4", "random_file.txt")
	cfg.Output = "-"

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, strings.NewReader(""), &out))

	// Both extensions normalize to the same key, so one query yields two rows.
	assert.Equal(t, "movie (2020).mkv\nmovie (2020).mp4\n", out.String())
}

func TestRun_HighThresholdYieldsEmptyListing(t *testing.T) {
	cfg := setupRun(t, "Jane Doe\n", "jane_doe_resume_2023.pdf")
	cfg.Output = "-"
	cfg.Threshold = 95

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, strings.NewReader(""), &out))
	assert.Empty(t, out.String())
}

func TestRun_TableModeWithDiskSpace(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	cfg := setupRun(t, "Jane Doe\n", "jane_doe_resume_2023.pdf")
	cfg.Space = true

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, strings.NewReader(""), &out))

	assert.Contains(t, out.String(), "Name")
	assert.Contains(t, out.String(), "jane_doe_resume_2023.pdf")
	assert.Contains(t, out.String(), "Disk space = ")
}

func TestRun_ListingToFileRoundTrips(t *testing.T) {
	cfg := setupRun(t, "Jane Doe\n", "jane_doe_resume_2023.pdf")
	cfg.Output = filepath.Join(t.TempDir(), "matched.txt")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, strings.NewReader(""), &out))
	assert.Empty(t, out.String(), "listing mode writes nothing to the console")

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, "jane_doe_resume_2023.pdf\n", string(data))
}

func TestRun_CopyTransfersKeptRows(t *testing.T) {
	cfg := setupRun(t, "movie\n", "movie (2020).mkv", "movie (2020).mp4")
	cfg.Output = "-"
	cfg.CopyDest = filepath.Join(t.TempDir(), "picked")
	cfg.AssumeYes = true

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, strings.NewReader(""), &out))

	assert.FileExists(t, filepath.Join(cfg.CopyDest, "movie (2020).mkv"))
	assert.FileExists(t, filepath.Join(cfg.CopyDest, "movie (2020).mp4"))
	assert.FileExists(t, filepath.Join(cfg.WorkDir, "movie (2020).mkv"), "copy preserves sources")
}

func TestRun_MoveRemovesSources(t *testing.T) {
	cfg := setupRun(t, "movie\n", "movie (2020).mkv")
	cfg.Output = "-"
	cfg.MoveDest = filepath.Join(t.TempDir(), "picked")
	cfg.AssumeYes = true

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, strings.NewReader(""), &out))

	assert.FileExists(t, filepath.Join(cfg.MoveDest, "movie (2020).mkv"))
	assert.NoFileExists(t, filepath.Join(cfg.WorkDir, "movie (2020).mkv"))
}

func TestRun_DeclinedTransferTouchesNothing(t *testing.T) {
	cfg := setupRun(t, "movie\n", "movie (2020).mkv")
	cfg.Output = "-"
	cfg.CopyDest = filepath.Join(t.TempDir(), "picked")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, strings.NewReader("no\n"), &out),
		"declining is a normal outcome, not an error")

	assert.NoDirExists(t, cfg.CopyDest)
	assert.FileExists(t, filepath.Join(cfg.WorkDir, "movie (2020).mkv"))
}

func TestRun_EmptyDirectoryProducesEmptyReport(t *testing.T) {
	cfg := setupRun(t, "anything\n")
	cfg.Output = "-"
	cfg.CopyDest = filepath.Join(t.TempDir(), "picked")
	cfg.AssumeYes = true

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, strings.NewReader(""), &out))
	assert.Empty(t, out.String())
	assert.NoDirExists(t, cfg.CopyDest, "no rows means no transfer")
}

func TestRun_MissingNamesFileFails(t *testing.T) {
	cfg := setupRun(t, "x\n")
	cfg.NamesFile = filepath.Join(t.TempDir(), "absent.txt")

	var out bytes.Buffer
	err := run(context.Background(), cfg, strings.NewReader(""), &out)
	require.Error(t, err)
}

func TestRootCmd_CopyMoveConflict(t *testing.T) {
	namesFile := filepath.Join(t.TempDir(), "names.txt")
	writeFile(t, namesFile, "x\n")
	dest := filepath.Join(t.TempDir(), "dest")

	cmd := newRootCmd()
	cmd.SetArgs([]string{namesFile, "--copy", dest, "--move", dest})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	t.Cleanup(func() { copyDest, moveDest = "", "" })

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
	assert.NoDirExists(t, dest, "usage conflict aborts before any I/O")
}
