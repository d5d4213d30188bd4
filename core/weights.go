// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// Dimension is one axis of lesson comparison.
type Dimension int

const (
	DimensionAxes Dimension = iota
	DimensionTools
	DimensionVirtues
	DimensionStrategies
	DimensionAge
	DimensionDuration
	DimensionDomain

	// DimensionCount is the number of scoring dimensions.
	DimensionCount = 7
)

var dimensionNames = [DimensionCount]string{
	"axes", "tools", "virtues", "strategies", "age", "duration", "domain",
}

// Dimensions returns every dimension in scoring order.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionAxes,
		DimensionTools,
		DimensionVirtues,
		DimensionStrategies,
		DimensionAge,
		DimensionDuration,
		DimensionDomain,
	}
}

func (d Dimension) String() string {
	if d >= 0 && int(d) < DimensionCount {
		return dimensionNames[d]
	}
	return fmt.Sprintf("Dimension(%d)", int(d))
}

// IsSet reports whether the dimension compares tag sets.
func (d Dimension) IsSet() bool {
	return d <= DimensionStrategies && d >= DimensionAxes
}

// ParseDimension parses a dimension name.
func ParseDimension(s string) (Dimension, error) {
	for i, name := range dimensionNames {
		if name == s {
			return Dimension(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown dimension %q", ErrInvalidWeights, s)
}

// Weights assigns a non-negative weight to each scoring dimension.
// Weights need not sum to 1.0, but a normalized configuration keeps
// composite scores in [0,1].
type Weights struct {
	Axes       float64 `yaml:"axes" json:"axes"`
	Tools      float64 `yaml:"tools" json:"tools"`
	Virtues    float64 `yaml:"virtues" json:"virtues"`
	Strategies float64 `yaml:"strategies" json:"strategies"`
	Age        float64 `yaml:"age" json:"age"`
	Duration   float64 `yaml:"duration" json:"duration"`
	Domain     float64 `yaml:"domain" json:"domain"`
}

// DefaultWeights returns the standard weight configuration (sums to 1.0).
func DefaultWeights() Weights {
	return Weights{
		Axes:       0.25,
		Tools:      0.20,
		Virtues:    0.20,
		Strategies: 0.15,
		Age:        0.10,
		Duration:   0.05,
		Domain:     0.05,
	}
}

// Of returns the weight of a dimension.
func (w Weights) Of(d Dimension) float64 {
	switch d {
	case DimensionAxes:
		return w.Axes
	case DimensionTools:
		return w.Tools
	case DimensionVirtues:
		return w.Virtues
	case DimensionStrategies:
		return w.Strategies
	case DimensionAge:
		return w.Age
	case DimensionDuration:
		return w.Duration
	case DimensionDomain:
		return w.Domain
	}
	return 0
}

// With returns a copy of w with the weight of d replaced.
func (w Weights) With(d Dimension, value float64) Weights {
	switch d {
	case DimensionAxes:
		w.Axes = value
	case DimensionTools:
		w.Tools = value
	case DimensionVirtues:
		w.Virtues = value
	case DimensionStrategies:
		w.Strategies = value
	case DimensionAge:
		w.Age = value
	case DimensionDuration:
		w.Duration = value
	case DimensionDomain:
		w.Domain = value
	}
	return w
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	var sum float64
	for _, d := range Dimensions() {
		sum += w.Of(d)
	}
	return sum
}
