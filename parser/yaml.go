package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/liznear/almanac-from-scratch/table"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// yamlAlmanac is the YAML form:
//
//	seeds: [79, 14, 55, 13]
//	maps:
//	  - name: seed-to-soil
//	    rules:
//	      - [50, 98, 2]
//	      - [52, 50, 48]
//
// The seeds key is required, though its list may be empty.
type yamlAlmanac struct {
	Seeds *[]uint64 `yaml:"seeds"`
	Maps  []yamlMap `yaml:"maps"`
}

type yamlMap struct {
	Name  string     `yaml:"name"`
	Rules [][]uint64 `yaml:"rules"`
}

// ParseYAML parses the YAML form of an almanac. Unknown keys are rejected.
func ParseYAML(input []byte) (*Almanac, error) {
	var doc yamlAlmanac
	dec := yaml.NewDecoder(bytes.NewReader(input))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("almanac: fail to parse yaml: %w", err)
	}
	return doc.toAlmanac()
}

func (doc *yamlAlmanac) toAlmanac() (*Almanac, error) {
	ret := &Almanac{}
	var errs error
	if doc.Seeds == nil {
		errs = multierr.Append(errs, errors.New("missing seeds"))
	} else {
		ret.Seeds = *doc.Seeds
	}
	for i, m := range doc.Maps {
		if m.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("map %d: missing name", i))
		}
		rules := make([]table.Rule, 0, len(m.Rules))
		for j, triple := range m.Rules {
			if len(triple) != 3 {
				errs = multierr.Append(errs, fmt.Errorf("map %q rule %d: want 3 numbers, got %d", m.Name, j, len(triple)))
				continue
			}
			r, err := table.NewRule(triple[0], triple[1], triple[2])
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("map %q rule %d: %w", m.Name, j, err))
				continue
			}
			rules = append(rules, r)
		}
		ret.Tables = append(ret.Tables, table.New(m.Name, rules...))
	}
	if errs != nil {
		return nil, fmt.Errorf("almanac: invalid yaml: %w", errs)
	}
	return ret, nil
}
