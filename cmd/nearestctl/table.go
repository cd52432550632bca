package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"

	"github.com/amp-labs/sortedcollections/maps"
	"github.com/amp-labs/sortedcollections/nearest"
	"gopkg.in/yaml.v3"
)

var errDuplicateKey = errors.New("duplicate key")

type tableFile struct {
	Rounding string       `yaml:"rounding"`
	Load     int          `yaml:"load"`
	Entries  []tableEntry `yaml:"entries"`
}

type tableEntry struct {
	Key   float64 `yaml:"key"`
	Value string  `yaml:"value"`
}

// loadTable decodes a table. A non-empty rounding overrides the one in the file.
func loadTable(r io.Reader, rounding string) (*nearest.Map[float64, string], error) {
	var file tableFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding table: %w", err)
	}

	mode, err := nearest.ParseRounding(cmp.Or(rounding, file.Rounding, nearest.Nearest.String()))
	if err != nil {
		return nil, err
	}

	mapOpts := []maps.Option{maps.WithName(appName)}
	if file.Load > 0 {
		mapOpts = append(mapOpts, maps.WithLoad(file.Load))
	}

	table := nearest.New[float64, string](nearest.WithRounding(mode), nearest.WithMapOptions(mapOpts...))

	for _, e := range file.Entries {
		if table.Contains(e.Key) {
			return nil, fmt.Errorf("%w: %g", errDuplicateKey, e.Key)
		}

		if err := table.Set(e.Key, e.Value); err != nil {
			return nil, err
		}
	}

	return table, nil
}
