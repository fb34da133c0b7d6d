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

// Package config holds the per-run configuration: command-line flags merged
// over an optional defaults file.
package config

import (
	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// DefaultThreshold is the inclusive minimum score kept when none is given.
const DefaultThreshold = 50

// 📚 Config is the complete, immutable input of one run. It is assembled
// once by the CLI and passed explicitly down the pipeline; no component
// reads ambient state.
type Config struct {
	NamesFile string   // positional argument: file of names to resolve
	WorkDir   string   // directory whose files form the candidate set
	Threshold int      // inclusive lower score bound, 0-100
	Space     bool     // print aggregate disk space after the table
	Exclude   []string // glob patterns removed from the candidate set
	CopyDest  string   // copy destination, empty = no copy
	MoveDest  string   // move destination, empty = no move
	Output    string   // listing target, "-" = stdout, empty = table mode
	AssumeYes bool     // skip the transfer confirmation prompt
}

// 🔍 Validate checks the usage rules that must abort before any matching or
// I/O happens: threshold range, copy/move exclusivity, well-formed excludes.
func (cfg *Config) Validate() error {
	if cfg.NamesFile == "" {
		return errors.Errorf("names file is required")
	}
	if cfg.Threshold < 0 || cfg.Threshold > 100 {
		return errors.Errorf("threshold %d out of range [0,100]", cfg.Threshold)
	}
	if cfg.CopyDest != "" && cfg.MoveDest != "" {
		return errors.Errorf("--copy and --move are mutually exclusive")
	}
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}

// TransferRequested reports whether a copy or move phase should run.
func (cfg *Config) TransferRequested() bool {
	return cfg.CopyDest != "" || cfg.MoveDest != ""
}

// ListingMode reports whether output goes to a flat path listing instead of
// the interactive table.
func (cfg *Config) ListingMode() bool {
	return cfg.Output != ""
}
