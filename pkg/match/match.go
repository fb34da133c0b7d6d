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

// Package match pairs query names with their best-scoring candidate key.
package match

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// 🧮 Scorer rates how well candidate matches query, in [0,100]. The scorer is
// an injected capability: swapping it changes scores, never pipeline shape.
type Scorer func(query, candidate string) int

// 🎯 Match is the single best resolution of one query against the key set.
type Match struct {
	Query string // the name as given by the operator
	Key   string // the winning normalized key
	Score int    // scorer result, 0-100
}

// QRatio is the default Scorer, a full-string quick ratio with basic
// lowercasing and punctuation stripping applied internally.
func QRatio(query, candidate string) int {
	return fuzzy.QRatio(query, candidate)
}

// 🥇 Best evaluates score against every key and returns the highest-scoring
// one. Among equal maximum scores the first key in slice order wins; callers
// pass keys in a pinned order so tie-breaks stay reproducible. An empty key
// set yields ok=false and the query is dropped without error. Best applies
// no threshold; filtering is a downstream concern.
func Best(query string, keys []string, score Scorer) (Match, bool) {
	if len(keys) == 0 {
		return Match{}, false
	}

	best := Match{Query: query, Key: keys[0], Score: score(query, keys[0])}
	for _, key := range keys[1:] {
		if s := score(query, key); s > best.Score {
			best.Key = key
			best.Score = s
		}
	}
	return best, true
}

// 📋 All matches each query independently, preserving query input order.
// Duplicate queries are matched again and produce their own Match.
func All(queries []string, keys []string, score Scorer) []Match {
	matches := make([]Match, 0, len(queries))
	for _, q := range queries {
		if m, ok := Best(q, keys, score); ok {
			matches = append(matches, m)
		}
	}
	return matches
}
