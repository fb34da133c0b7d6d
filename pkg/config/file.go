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

package config

import (
	"context"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"gitlab.com/tozd/go/errors"
)

// defaultsFiles are probed in order when no --config is given.
var defaultsFiles = []string{".fuzzycp.yaml", ".fuzzycp.yml", ".fuzzycp.hcl"}

// 📝 Defaults are the file-settable subset of Config. Pointer fields
// distinguish "absent" from zero so command-line flags can win only when
// actually set.
type Defaults struct {
	Threshold *int     `yaml:"threshold,omitempty" hcl:"threshold,optional"`
	Space     *bool    `yaml:"space,omitempty" hcl:"space,optional"`
	Exclude   []string `yaml:"exclude,omitempty" hcl:"exclude,optional"`
}

// 🔌 Parser is the interface for defaults-file parsers.
type Parser interface {
	// 📝 Parse parses the defaults from bytes
	Parse(ctx context.Context, data []byte) (*Defaults, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

// 🗺️ parsers is the list of registered parsers.
var parsers []Parser

// 📝 Register registers a parser.
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file.
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🎯 LoadDefaults loads the optional defaults file. An explicit path must
// exist and parse; with no path, the conventional filenames are probed and
// absence simply yields empty defaults.
func LoadDefaults(ctx context.Context, path string) (*Defaults, error) {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		for _, candidate := range defaultsFiles {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return &Defaults{}, nil
		}
	}
	logger.Debug().Str("path", path).Msg("loading defaults file")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading defaults file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	d, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing defaults file %s: %w", path, err)
	}
	return d, nil
}

// 🧩 Apply folds file defaults into cfg for every field the command line did
// not set explicitly; changed reports flag names the operator used.
func (cfg *Config) Apply(d *Defaults, changed func(flag string) bool) {
	if d.Threshold != nil && !changed("threshold") {
		cfg.Threshold = *d.Threshold
	}
	if d.Space != nil && !changed("space") {
		cfg.Space = *d.Space
	}
	if len(d.Exclude) > 0 && !changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, d.Exclude...)
	}
}

// 🔧 YAMLParser implements the Parser interface for YAML files.
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Defaults, error) {
	var d Defaults
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&d); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &d, nil
}

// 🔧 HCLParser implements the Parser interface for HCL files.
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Defaults, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "defaults.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var d Defaults
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &d)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}
	return &d, nil
}
