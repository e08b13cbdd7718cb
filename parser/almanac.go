// Package parser reads almanacs: a list of seeds followed by the named tables
// that map them, stage by stage, to locations.
//
// Two forms are understood. The text form is
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// where every rule line is "destination source length". The YAML form holds the
// same data under the keys seeds and maps.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/liznear/almanac-from-scratch/model"
	"github.com/liznear/almanac-from-scratch/pipeline"
	"github.com/liznear/almanac-from-scratch/table"
)

// Almanac is a parsed almanac file.
type Almanac struct {
	Seeds  []uint64
	Tables []*table.Table
}

// SeedRanges pairs consecutive seeds as (start, length) into [start, start+length).
func (a *Almanac) SeedRanges() ([]model.Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("almanac: seed ranges need an even number of seeds, got %d", len(a.Seeds))
	}
	ret := make([]model.Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		r, err := model.FromStartLen(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return nil, fmt.Errorf("almanac: bad seed range %d: %w", i/2, err)
		}
		ret = append(ret, r)
	}
	return ret, nil
}

// Pipeline chains the almanac's tables in the order they were listed.
func (a *Almanac) Pipeline(opts ...pipeline.Option) *pipeline.Pipeline {
	return pipeline.New(a.Tables, opts...)
}

// ParseFile reads an almanac, picking the form from the file extension:
// ".yaml" and ".yml" are YAML, anything else is text.
func ParseFile(filename string) (*Almanac, error) {
	bs, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("almanac: fail to read %s: %w", filename, err)
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return ParseYAML(bs)
	default:
		return parseText(filename, bs)
	}
}
