// Package category holds the static topic configuration: which feeds to
// read per category, which hashtags and keywords belong to it, and what
// evergreen content to fall back on when there is no fresh news.
package category

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a single topic category. All slices are read-only after
// the table is built.
type Config struct {
	Name             string   `yaml:"name"`
	Feeds            []string `yaml:"feeds"`
	Hashtags         []string `yaml:"hashtags"`
	TrendKeywords    []string `yaml:"trendKeywords"`
	FallbackKeywords []string `yaml:"fallbackKeywords"`
	EvergreenHooks   []string `yaml:"evergreenHooks"`
	Prefixes         []string `yaml:"prefixes"`
	ImageKeywords    []string `yaml:"imageKeywords"`
	// WOEID is the Twitter trend region for this category. Most categories
	// share the worldwide placeholder (1); only the Kenyan ones carry a
	// real region id.
	WOEID int `yaml:"woeid"`
}

// Table is an immutable category lookup built once at startup. Iteration
// order is the declaration order of the underlying config.
type Table struct {
	byName map[string]Config
	names  []string
}

// NewTable builds a table from an ordered category list.
func NewTable(configs []Config) *Table {
	t := &Table{byName: make(map[string]Config, len(configs))}
	for _, c := range configs {
		if _, dup := t.byName[c.Name]; dup {
			continue
		}
		t.byName[c.Name] = c
		t.names = append(t.names, c.Name)
	}
	return t
}

// Names returns category names in declaration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Lookup returns the configuration for a category. Unknown categories fail
// closed: the zero Config, with empty feed and hashtag sets.
func (t *Table) Lookup(name string) Config {
	return t.byName[name]
}

// Has reports whether the category exists in the table.
func (t *Table) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Len returns the number of configured categories.
func (t *Table) Len() int {
	return len(t.names)
}

type fileConfig struct {
	Categories []Config `yaml:"categories"`
}

// LoadFile reads a category table from a YAML file, replacing the built-in
// defaults entirely.
func LoadFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read categories file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse categories file: %w", err)
	}
	if len(cfg.Categories) == 0 {
		return nil, fmt.Errorf("categories file %s defines no categories", path)
	}

	for _, c := range cfg.Categories {
		if c.Name == "" {
			return nil, fmt.Errorf("categories file %s contains a category without a name", path)
		}
	}

	return NewTable(cfg.Categories), nil
}

// Load returns the table from the given file, or the built-in defaults
// when path is empty.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
