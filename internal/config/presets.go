package config

import "sort"

var Presets = map[string]map[string]*Config{
	"bar": {
		"classic": {
			Kind: "bar", Material: "iron", Length: 1.0, Tmax: 16.0,
			InitialTemp: 13.0, SourceAmplitude: 80.0, GridPoints: 1001,
		},
		"copper-flash": {
			Kind: "bar", Material: "copper", Length: 1.0, Tmax: 4.0,
			InitialTemp: 13.0, SourceAmplitude: 120.0, GridPoints: 501,
		},
		"insulator": {
			Kind: "bar", Material: "polystyrene", Length: 0.5, Tmax: 32.0,
			InitialTemp: 20.0, SourceAmplitude: 60.0, GridPoints: 301,
		},
	},
	"plate": {
		"classic": {
			Kind: "plate", Material: "iron", Length: 1.0, Tmax: 16.0,
			InitialTemp: 13.0, SourceAmplitude: 80.0, GridPoints: 101,
		},
		"glass-slow": {
			Kind: "plate", Material: "glass", Length: 1.0, Tmax: 64.0,
			InitialTemp: 13.0, SourceAmplitude: 80.0, GridPoints: 101,
		},
		"grid": {
			Kind: "plate", Material: "iron", GridMode: true, Length: 1.0,
			Tmax: 16.0, InitialTemp: 13.0, SourceAmplitude: 80.0, GridPoints: 61,
		},
	},
}

func GetPreset(kind, name string) *Config {
	byKind, ok := Presets[kind]
	if !ok {
		return nil
	}
	return byKind[name]
}

func ListPresets(kind string) []string {
	byKind, ok := Presets[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byKind))
	for name := range byKind {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
