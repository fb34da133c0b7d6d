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

// Package normalize derives canonical comparison keys from filenames.
package normalize

import (
	"path/filepath"
	"regexp"
	"strings"
)

// 🧹 bracketed matches one maximal non-nested [...], (...) or {...} span
// together with the whitespace around it.
var bracketed = regexp.MustCompile(`\s*[\[({][^\])}]*[\])}]\s*`)

// 🔤 separators rewrites underscore and hyphen to a single space.
var separators = strings.NewReplacer("_", " ", "-", " ")

// 🎯 Key maps a raw filename to its canonical comparison key. The steps are
// applied in fixed order: strip the final extension, turn separators into
// spaces, drop bracketed annotations, collapse whitespace. Case is preserved;
// the scorer is expected to case-fold on its own. Key is a pure function of
// its input, and the empty string is a legal key.
func Key(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	s := separators.Replace(stem)
	s = bracketed.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}
