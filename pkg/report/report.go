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

// Package report renders the kept rows, either as a flat path listing or as
// an aligned, colorized table with an optional disk-space total.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mfranzen/fuzzycp/pkg/resolve"
	"gitlab.com/tozd/go/errors"
)

// 🎨 Semantic colors, one per table column: query name, matched file, score.
var (
	nameColor  = color.New(color.FgGreen)
	fileColor  = color.New(color.FgBlue)
	scoreColor = color.New(color.FgRed)
)

// Table header labels.
const (
	nameHeader  = "Name"
	fileHeader  = "Best-match"
	scoreHeader = "Score"
)

// 📄 WriteListing writes one kept path per line: no header, no color, no
// aggregate. This is the machine-readable mode for piping into other tools.
func WriteListing(w io.Writer, rows []resolve.Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Path); err != nil {
			return errors.Errorf("writing listing: %w", err)
		}
	}
	return nil
}

// 📊 WriteTable writes the interactive three-column view. Column widths are
// the maximum content width over kept rows, never less than the header width;
// color codes are applied after padding so they cannot skew alignment.
func WriteTable(w io.Writer, rows []resolve.Row) error {
	nameW := utf8.RuneCountInString(nameHeader)
	fileW := utf8.RuneCountInString(fileHeader)
	for _, r := range rows {
		if n := utf8.RuneCountInString(r.Query); n > nameW {
			nameW = n
		}
		if n := utf8.RuneCountInString(r.Path); n > fileW {
			fileW = n
		}
	}

	if err := writeRow(w, nameW, fileW, nameHeader, fileHeader, scoreHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := writeRow(w, nameW, fileW, r.Query, r.Path, strconv.Itoa(r.Score)); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, nameW, fileW int, name, file, score string) error {
	_, err := fmt.Fprintf(w, "%s  %s  %s\n",
		nameColor.Sprint(pad(name, nameW)),
		fileColor.Sprint(pad(file, fileW)),
		scoreColor.Sprint(score))
	if err != nil {
		return errors.Errorf("writing table row: %w", err)
	}
	return nil
}

func pad(s string, width int) string {
	for n := utf8.RuneCountInString(s); n < width; n++ {
		s += " "
	}
	return s
}

// 💾 TotalSize sums the byte sizes of every kept row's file, one stat per row
// occurrence: a file kept under two queries counts twice, matching the
// transfer count.
func TotalSize(dir string, rows []resolve.Row) (uint64, error) {
	var total uint64
	for _, r := range rows {
		info, err := os.Stat(filepath.Join(dir, r.Path))
		if err != nil {
			return 0, errors.Errorf("sizing %s: %w", r.Path, err)
		}
		total += uint64(info.Size())
	}
	return total, nil
}

// FormatSize renders a byte count in binary (IEC) units, e.g. "358.6 MiB".
func FormatSize(total uint64) string {
	return humanize.IBytes(total)
}
