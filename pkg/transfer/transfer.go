// Copyright 2026 Matteo Franzen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package transfer performs the confirmed bulk copy or move of resolved files.
package transfer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mfranzen/fuzzycp/pkg/resolve"
	"github.com/mfranzen/fuzzycp/pkg/ui"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🚚 Mode selects the transfer operation.
type Mode int

const (
	ModeCopy Mode = iota // source preserved
	ModeMove             // source removed on success
)

// String returns the mode name for logs and errors.
func (m Mode) String() string {
	if m == ModeMove {
		return "move"
	}
	return "copy"
}

// verb is the progress banner, matching the operator-facing wording.
func (m Mode) verb() string {
	if m == ModeMove {
		return "Moving files"
	}
	return "Copying files"
}

// 🔧 Options configures an Executor.
type Options struct {
	Mode      Mode
	SourceDir string    // directory the row paths are relative to
	DestDir   string    // destination directory, created on demand
	AssumeYes bool      // skip the confirmation prompt
	Prompt    io.Reader // confirmation input, normally stdin
	PromptOut io.Writer // confirmation output, normally stdout
	UI        *ui.Printer
}

// 🏭 New creates an executor.
func New(opts Options) *Executor {
	return &Executor{opts: opts}
}

// 🚚 Executor transfers kept rows one at a time, in order.
type Executor struct {
	opts Options
}

// 📊 Result reports the outcome of a Run.
type Result struct {
	Transferred int  // completed transfers, also valid when Run errors out
	Cancelled   bool // operator declined; nothing was touched
}

// 🏃 Run prompts for confirmation, ensures the destination directory exists
// and transfers every row sequentially. Rows are not deduplicated: a file
// matched by two queries is transferred twice to the same destination name,
// the second pass overwriting the first. The first failing item aborts the
// batch (no rollback); Result.Transferred says how far it got.
func (e *Executor) Run(ctx context.Context, rows []resolve.Row) (Result, error) {
	logger := zerolog.Ctx(ctx)

	if !e.opts.AssumeYes {
		ok, err := e.confirm(len(rows))
		if err != nil {
			return Result{}, err
		}
		if !ok {
			logger.Debug().Msg("operator declined transfer")
			return Result{Cancelled: true}, nil
		}
	}

	if err := os.MkdirAll(e.opts.DestDir, 0o755); err != nil {
		return Result{}, errors.Errorf("creating destination directory: %w", err)
	}

	e.opts.UI.Info(fmt.Sprintf("%s to %s", e.opts.Mode.verb(), e.opts.DestDir))

	var res Result
	for i, row := range rows {
		src := filepath.Join(e.opts.SourceDir, row.Path)
		dst := filepath.Join(e.opts.DestDir, filepath.Base(row.Path))

		var err error
		if e.opts.Mode == ModeMove {
			err = moveFile(src, dst)
		} else {
			err = copyFile(src, dst)
		}
		if err != nil {
			return res, errors.Errorf("%s %s after %d of %d files: %w",
				e.opts.Mode, row.Path, res.Transferred, len(rows), err)
		}

		res.Transferred++
		e.opts.UI.Item(i+1, len(rows), row.Path)
	}

	return res, nil
}

// 🙋 confirm asks the operator before touching anything. Only an affirmative
// "yes" (or "y") proceeds; everything else, including EOF, cancels.
func (e *Executor) confirm(count int) (bool, error) {
	_, err := fmt.Fprintf(e.opts.PromptOut, "About to %s %d file(s) to %q. Continue? [yes/no]: ",
		e.opts.Mode, count, e.opts.DestDir)
	if err != nil {
		return false, errors.Errorf("writing prompt: %w", err)
	}

	scanner := bufio.NewScanner(e.opts.Prompt)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, errors.Errorf("reading confirmation: %w", err)
		}
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "yes" || answer == "y", nil
}

// 📋 copyFile copies src to dst, preserving mode and modification time. An
// existing dst is truncated: destination name collisions are last-write-wins.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return errors.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Errorf("creating destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Errorf("copying content: %w", err)
	}
	if err := out.Close(); err != nil {
		return errors.Errorf("closing destination: %w", err)
	}

	// The create mode is subject to umask; restate it to preserve the source
	// permissions exactly.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return errors.Errorf("preserving mode: %w", err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return errors.Errorf("preserving times: %w", err)
	}
	return nil
}

// 🚚 moveFile renames src to dst, falling back to copy+remove when the
// destination is on another filesystem (EXDEV), so a move behaves like mv.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return errors.Errorf("renaming: %w", err)
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return errors.Errorf("removing source: %w", err)
	}
	return nil
}
