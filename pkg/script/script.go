// Package script replays scripted editing sessions against a tagging engine
// bound to an in-memory surface. Scripts are written in YAML or HCL.
package script

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Script is one editing session: initial state, ordered steps and the
// expected outcome.
type Script struct {
	Name       string       `yaml:"name,omitempty" hcl:"name,optional"`
	Triggers   []string     `yaml:"triggers,omitempty" hcl:"triggers,optional"`
	Candidates []string     `yaml:"candidates,omitempty" hcl:"candidates,optional"`
	Text       string       `yaml:"text,omitempty" hcl:"text,optional"`
	Caret      *int         `yaml:"caret,omitempty" hcl:"caret,optional"`
	Steps      []*Step      `yaml:"steps,omitempty" hcl:"step,block"`
	Expect     *Expectation `yaml:"expect,omitempty" hcl:"expect,block"`

	Path string `yaml:"-"`
}

// Step holds exactly one action, optionally followed by a checkpoint.
// A step may also be a bare checkpoint.
type Step struct {
	Type       *string  `yaml:"type,omitempty" hcl:"type,optional"`
	Backspace  *int     `yaml:"backspace,omitempty" hcl:"backspace,optional"`
	Move       *int     `yaml:"move,omitempty" hcl:"move,optional"`
	Commit     *string  `yaml:"commit,omitempty" hcl:"commit,optional"`
	Candidates []string `yaml:"candidates,omitempty" hcl:"candidates,optional"`
	Replace    *Replace `yaml:"replace,omitempty" hcl:"replace,block"`

	Expect *Expectation `yaml:"expect,omitempty" hcl:"expect,block"`
}

type Replace struct {
	Start  int    `yaml:"start" hcl:"start"`
	Length int    `yaml:"length" hcl:"length"`
	Text   string `yaml:"text" hcl:"text,optional"`
}

// Expectation lists what must hold at a checkpoint. Unset fields are not
// checked.
type Expectation struct {
	Text      *string       `yaml:"text,omitempty" hcl:"text,optional"`
	Caret     *int          `yaml:"caret,omitempty" hcl:"caret,optional"`
	Tags      []ExpectedTag `yaml:"tags,omitempty" hcl:"tag,block"`
	TagCount  *int          `yaml:"tag_count,omitempty" hcl:"tag_count,optional"`
	Candidate *string       `yaml:"candidate,omitempty" hcl:"candidate,optional"`
	Filtered  []string      `yaml:"filtered,omitempty" hcl:"filtered,optional"`
}

type ExpectedTag struct {
	Text string `yaml:"text" hcl:"text"`
	// Symbol is only compared when set.
	Symbol string `yaml:"symbol,omitempty" hcl:"symbol,optional"`
	Start  int    `yaml:"start" hcl:"start"`
	Length int    `yaml:"length" hcl:"length"`
}

func isYAML(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

// Load reads a script from fs. Files ending in .yaml or .yml are YAML with
// unknown keys rejected; anything else is parsed as HCL.
func Load(fs afero.Fs, path string) (*Script, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading script file: %w", err)
	}

	s, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	s.Path = path
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes data, using filename to pick the format.
func Parse(data []byte, filename string) (*Script, error) {
	var s Script

	if isYAML(filename) {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Errorf("parsing YAML: %w", err)
		}
		return &s, nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	diags = gohcl.DecodeBody(hclFile.Body, ctx, &s)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &s, nil
}
