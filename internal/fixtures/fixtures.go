// Package fixtures seeds a store from YAML files through the same repository
// ports the API reads from.
package fixtures

import (
	"context"
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vncsmyrnk/election/internal/core/domain"
	"github.com/vncsmyrnk/election/internal/core/ports"
)

//go:embed data/sample.yaml
var sampleFS embed.FS

type Fixtures struct {
	Elections       []domain.Election       `yaml:"elections"`
	PollingStations []domain.PollingStation `yaml:"polling_stations"`
}

// Sample is election 1 with two polling stations, one of them named
// `Stembureau "Op Rolletjes"`, and election 2 without any.
func Sample() (Fixtures, error) {
	b, err := sampleFS.ReadFile("data/sample.yaml")
	if err != nil {
		return Fixtures{}, err
	}
	return Parse(b)
}

func LoadFile(path string) (Fixtures, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("failed to read fixtures: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Fixtures{}, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return f, nil
}

// Insert saves elections before polling stations so references resolve.
func (f Fixtures) Insert(ctx context.Context, elections ports.ElectionRepository, stations ports.PollingStationRepository) error {
	for i := range f.Elections {
		if err := elections.Save(ctx, &f.Elections[i]); err != nil {
			return fmt.Errorf("failed to insert election %q: %w", f.Elections[i].Name, err)
		}
	}
	for i := range f.PollingStations {
		if err := stations.Save(ctx, &f.PollingStations[i]); err != nil {
			return fmt.Errorf("failed to insert polling station %q: %w", f.PollingStations[i].Name, err)
		}
	}
	return nil
}
