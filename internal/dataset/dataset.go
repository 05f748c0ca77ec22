// Package dataset loads town maps: the static list of roads the
// simulation runs on, the hub the robot starts from, and the closed tour
// the fixed-route strategy follows.
package dataset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"courier-sim/internal/domain"
)

// ErrInvalidDataset is returned when a town map fails validation.
var ErrInvalidDataset = errors.New("dataset: invalid town map")

// Dataset describes one town map. Roads use the "A-B" descriptor format
// (location names therefore must not contain '-'); Tour lists the stops
// of a closed walk starting and ending at the hub, excluding the hub
// itself as origin.
type Dataset struct {
	Hub   string   `yaml:"hub"`
	Roads []string `yaml:"roads"`
	Tour  []string `yaml:"tour"`
}

// Load reads a town map from a YAML file.
func Load(path string) (Dataset, error) {
	var d Dataset
	raw, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("dataset: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return d, fmt.Errorf("dataset: parse %q: %w", path, err)
	}
	return d, nil
}

// Default returns the built-in town map.
func Default() Dataset {
	return Dataset{
		Hub: "Depot",
		Roads: []string{
			"Depot-Market",
			"Depot-Schoolhouse",
			"Depot-Smithy",
			"Market-Bakery",
			"Market-Town Hall",
			"Bakery-Tavern",
			"Town Hall-Tavern",
			"Town Hall-Harbor",
			"Harbor-Old Mill",
			"Old Mill-Farm",
			"Farm-Schoolhouse",
			"Schoolhouse-Smithy",
			"Smithy-Tavern",
		},
		Tour: []string{
			"Market",
			"Bakery",
			"Tavern",
			"Town Hall",
			"Harbor",
			"Old Mill",
			"Farm",
			"Schoolhouse",
			"Smithy",
			"Depot",
		},
	}
}

// Graph builds the road graph of the dataset.
func (d Dataset) Graph() (*domain.RoadGraph, error) {
	g, err := domain.BuildRoadGraph(d.Roads)
	if err != nil {
		return nil, fmt.Errorf("dataset: build graph: %w", err)
	}
	return g, nil
}

// Validate checks the dataset invariants: a known hub, a tour that
// starts next to the hub, closes back at it, only ever moves along
// roads, and visits every place in town. The fixed-route strategy's
// termination guarantee rests on these.
func (d Dataset) Validate() error {
	g, err := d.Graph()
	if err != nil {
		return err
	}

	if !g.Contains(d.Hub) {
		return fmt.Errorf("%w: hub %q is not on any road", ErrInvalidDataset, d.Hub)
	}
	if len(d.Tour) == 0 {
		return fmt.Errorf("%w: tour is empty", ErrInvalidDataset)
	}
	if d.Tour[len(d.Tour)-1] != d.Hub {
		return fmt.Errorf("%w: tour ends at %q, want hub %q", ErrInvalidDataset, d.Tour[len(d.Tour)-1], d.Hub)
	}

	visited := map[string]bool{d.Hub: true}
	at := d.Hub
	for i, stop := range d.Tour {
		neighbors, err := g.Neighbors(at)
		if err != nil {
			return fmt.Errorf("%w: tour stop #%d: %v", ErrInvalidDataset, i+1, err)
		}
		adjacent := false
		for _, n := range neighbors {
			if n == stop {
				adjacent = true
				break
			}
		}
		if !adjacent {
			return fmt.Errorf("%w: tour stop #%d %q is not adjacent to %q", ErrInvalidDataset, i+1, stop, at)
		}
		visited[stop] = true
		at = stop
	}

	for _, place := range g.Places() {
		if !visited[place] {
			return fmt.Errorf("%w: tour never visits %q", ErrInvalidDataset, place)
		}
	}

	return nil
}
