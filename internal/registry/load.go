package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// tableFiles maps the recognised data files inside a data directory to the
// merge routine for their contents. Absent files are simply skipped.
var tableFiles = map[string]func(*Registry, []byte) error{
	"biomes.yaml":    mergeBiomes,
	"items.yaml":     mergeItems,
	"templates.yaml": mergeTemplates,
	"seasons.yaml":   mergeSeasons,
	"weather.yaml":   mergeWeather,
	"locale.yaml":    mergeLocale,
}

// Load builds a registry from the built-in defaults and merges any YAML
// tables found in dir on top. An empty dir returns pure defaults.
func Load(dir string) (*Registry, error) {
	reg := Default()
	if dir == "" {
		return reg, nil
	}

	for name, merge := range tableFiles {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := merge(reg, data); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}
	return reg, nil
}

func mergeBiomes(r *Registry, data []byte) error {
	var rows []Biome
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return err
	}
	for _, b := range rows {
		if b.Name == "" {
			return errors.New("biome entry missing name")
		}
		r.biomes[b.Name] = b
	}
	return nil
}

func mergeItems(r *Registry, data []byte) error {
	var rows []ItemDef
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return err
	}
	for _, it := range rows {
		if it.ID == "" {
			return errors.New("item entry missing id")
		}
		r.items[it.ID] = it
	}
	return nil
}

func mergeTemplates(r *Registry, data []byte) error {
	var rows []TerrainTemplate
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return err
	}
	for _, t := range rows {
		if t.Terrain == "" {
			return errors.New("template entry missing terrain")
		}
		r.templates[t.Terrain] = t
	}
	return nil
}

func mergeSeasons(r *Registry, data []byte) error {
	var rows map[Season]SeasonModifiers
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return err
	}
	for season, mods := range rows {
		r.seasons[season] = mods
	}
	return nil
}

func mergeWeather(r *Registry, data []byte) error {
	var rows []WeatherPreset
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	// Weather overrides replace the whole table: partial weather sets would
	// silently skew the cumulative-weight draw.
	r.weather = rows
	return nil
}

func mergeLocale(r *Registry, data []byte) error {
	var rows map[string]string
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return err
	}
	for k, v := range rows {
		r.locale[k] = v
	}
	return nil
}
