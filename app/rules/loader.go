package rules

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

type Loader struct {
	rulesDir string
}

func NewLoader(rulesDir string) *Loader {
	return &Loader{rulesDir: rulesDir}
}

// Load returns the compiled rule set: built-in defaults, overridden by any
// yml files found in the rules directory. Files are applied in name order;
// a file only overrides the tables it mentions.
func (l *Loader) Load() (*Set, error) {
	tables := Defaults()

	if l.rulesDir != "" {
		if _, err := os.Stat(l.rulesDir); err == nil {
			files, err := filepath.Glob(filepath.Join(l.rulesDir, "*.yml"))
			if err != nil {
				return nil, fmt.Errorf("failed to find rule files: %w", err)
			}
			sort.Strings(files)

			for _, file := range files {
				data, err := os.ReadFile(file)
				if err != nil {
					return nil, fmt.Errorf("failed to read %s: %w", file, err)
				}
				if err := yaml.Unmarshal(data, &tables); err != nil {
					return nil, fmt.Errorf("failed to parse %s: %w", file, err)
				}
				slog.Debug("Rule overrides loaded", "file", filepath.Base(file))
			}
		}
	}

	set, err := Compile(tables)
	if err != nil {
		return nil, fmt.Errorf("failed to compile rule tables: %w", err)
	}

	slog.Debug("Rule tables ready",
		"url_company_patterns", len(set.URLCompany),
		"technical_keywords", len(set.TechnicalKeywords),
		"canadian_cities", len(set.CanadianCities))

	return set, nil
}
