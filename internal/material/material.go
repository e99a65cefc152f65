package material

import (
	"fmt"
	"sort"
)

// Material holds the physical constants of a homogeneous material.
// Values are never mutated after construction; solvers share materials
// by value.
type Material struct {
	Name         string  // display label
	Conductivity float64 // λ, W/(m·K)
	Density      float64 // ρ, kg/m³
	SpecificHeat float64 // c, J/(kg·K)
}

// Alpha returns the thermal diffusivity α = λ/(ρc) in m²/s.
func (m Material) Alpha() float64 {
	return m.Conductivity / (m.Density * m.SpecificHeat)
}

// Predefined materials matching the reference data set.
var (
	Copper      = Material{Name: "copper", Conductivity: 389.0, Density: 8940.0, SpecificHeat: 380.0}
	Iron        = Material{Name: "iron", Conductivity: 80.2, Density: 7874.0, SpecificHeat: 440.0}
	Glass       = Material{Name: "glass", Conductivity: 1.2, Density: 2530.0, SpecificHeat: 840.0}
	Polystyrene = Material{Name: "polystyrene", Conductivity: 0.1, Density: 1040.0, SpecificHeat: 1200.0}
)

// All lists every predefined material in display order: good conductors
// first, insulators last.
var All = []Material{Copper, Iron, Glass, Polystyrene}

var byName = map[string]Material{
	Copper.Name:      Copper,
	Iron.Name:        Iron,
	Glass.Name:       Glass,
	Polystyrene.Name: Polystyrene,
}

// ByName looks up a predefined material.
func ByName(name string) (Material, error) {
	m, ok := byName[name]
	if !ok {
		return Material{}, fmt.Errorf("unknown material: %s (available: %v)", name, Names())
	}
	return m, nil
}

// Names returns the predefined material names, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
