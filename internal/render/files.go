package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/econopsych/internal/pipeline"
)

// Chart file names written by WriteFiles.
const (
	SpendingFile = "spending.png"
	SavingsFile  = "savings.png"
	HeatmapFile  = "heatmap.png"
)

// WriteFiles renders every chart for l into dir and returns the paths written.
func (g *Generator) WriteFiles(l pipeline.Ledger, currency, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	charts := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{SpendingFile, func() ([]byte, error) { return g.Spending(l, currency) }},
		{SavingsFile, func() ([]byte, error) { return g.Savings(l, currency) }},
		{HeatmapFile, func() ([]byte, error) { return g.Heatmap(l) }},
	}

	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		data, err := c.render()
		if err != nil {
			return paths, fmt.Errorf("rendering %s: %w", c.name, err)
		}
		path := filepath.Join(dir, c.name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
