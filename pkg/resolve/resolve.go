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

// Package resolve snapshots the working directory, groups files by comparison
// key and joins match results back to concrete paths.
package resolve

import (
	"github.com/mfranzen/fuzzycp/pkg/match"
)

// 🗂️ KeyGroups is an ordered mapping from normalized key to the original
// filenames sharing it. One key may own several files (the same logical item
// stored as .mp4 and .mkv, say), so the relation is explicitly list-valued
// rather than an implicit collision. Key order is first-seen order, which for
// a directory snapshot is the listing order.
type KeyGroups struct {
	keys   []string
	groups map[string][]string
}

// 🏭 Group indexes candidates by key. Every candidate lands in exactly one
// group, under its own key, preserving candidate order within the group.
func Group(cands []Candidate) *KeyGroups {
	kg := &KeyGroups{groups: make(map[string][]string, len(cands))}
	for _, c := range cands {
		if _, seen := kg.groups[c.Key]; !seen {
			kg.keys = append(kg.keys, c.Key)
		}
		kg.groups[c.Key] = append(kg.groups[c.Key], c.Path)
	}
	return kg
}

// Keys returns the distinct keys in insertion order. This is the enumeration
// order the matcher sees, so it is also the tie-break order.
func (kg *KeyGroups) Keys() []string {
	return kg.keys
}

// Lookup returns the original filenames grouped under key, in snapshot order.
func (kg *KeyGroups) Lookup(key string) []string {
	return kg.groups[key]
}

// 🎯 Row is the terminal unit of work: one query resolved to one concrete
// file. A match whose key groups k files expands to k rows sharing the query
// and score.
type Row struct {
	Query string
	Path  string
	Score int
}

// 🔗 Resolve expands matches into rows: queries in match order (which is query
// input order), originals in group order within each query. Every matched key
// is drawn from the same key set the groups were built from, so the lookup
// always succeeds.
func Resolve(matches []match.Match, groups *KeyGroups) []Row {
	var rows []Row
	for _, m := range matches {
		for _, path := range groups.Lookup(m.Key) {
			rows = append(rows, Row{Query: m.Query, Path: path, Score: m.Score})
		}
	}
	return rows
}

// 🚧 Filter keeps rows scoring at least threshold, preserving order. Rows
// expanded from the same match share a score, so they are kept or dropped
// together.
func Filter(rows []Row, threshold int) []Row {
	kept := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Score >= threshold {
			kept = append(kept, r)
		}
	}
	return kept
}
