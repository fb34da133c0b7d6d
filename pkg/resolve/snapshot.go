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

package resolve

import (
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 📸 Candidate is one original file discovered in the working directory,
// carrying the comparison key derived from its name.
type Candidate struct {
	Path string // filename as listed, relative to the snapshot dir
	Key  string // canonical comparison key
}

// 🔑 KeyFunc derives the comparison key for a filename.
type KeyFunc func(filename string) string

// 📸 Snapshot lists the immediate regular files of dir, in lexical order, and
// derives a key for each. Hidden (dot-prefixed) files are skipped, as is any
// name matching one of the exclude globs. No recursion: subdirectories are
// ignored entirely. The returned order pins every downstream order, including
// matcher tie-breaks.
func Snapshot(dir string, exclude []string, key KeyFunc) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("listing directory %s: %w", dir, err)
	}

	cands := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		skip, err := matchesAny(name, exclude)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		cands = append(cands, Candidate{Path: name, Key: key(name)})
	}
	return cands, nil
}

func matchesAny(name string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, errors.Errorf("bad exclude pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
