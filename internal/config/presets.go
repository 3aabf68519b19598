package config

import "sort"

var Presets = map[string]*Config{
	"gaussian": {
		Length: 100, Dx: 1.0, Dt: 0.1, Duration: 50.0, Diffusivity: 1.0,
		BoundaryLow: "clamp", BoundaryHigh: "clamp",
		Initial: InitialConfig{Profile: "gaussian", Amplitude: 1.0},
	},
	"ring": {
		Length: 100, Dx: 1.0, Dt: 0.1, Duration: 50.0, Diffusivity: 1.0,
		BoundaryLow: "periodic", BoundaryHigh: "periodic",
		Initial: InitialConfig{Profile: "spike", Amplitude: 10.0},
	},
	"front": {
		Length: 200, Dx: 1.0, Dt: 0.2, Duration: 100.0, Diffusivity: 1.0,
		BoundaryLow: "mirror", BoundaryHigh: "mirror",
		Initial: InitialConfig{Profile: "step", Amplitude: 1.0},
	},
	// Deliberately violates the stability bound (D*dt/h² = 0.6) to show
	// the scheme diverging.
	"unstable": {
		Length: 50, Dx: 1.0, Dt: 0.6, Duration: 30.0, Diffusivity: 1.0,
		BoundaryLow: "clamp", BoundaryHigh: "clamp",
		Initial: InitialConfig{Profile: "spike", Amplitude: 10.0},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
