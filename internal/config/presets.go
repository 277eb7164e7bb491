package config

import "sort"

var Presets = map[string]*Config{
	"sapling": {
		Life: 16, Multiplier: 3, Base: 2, Time: DefaultTime, Wait: DefaultWait,
	},
	"classic": {
		Life: DefaultLife, Multiplier: DefaultMultiplier, Base: 1, Time: DefaultTime, Wait: DefaultWait,
	},
	"sprawling": {
		Life: 80, Multiplier: 8, Base: 1, Time: 0.01, Wait: DefaultWait,
	},
	"bushy": {
		Life: 48, Multiplier: 2, Base: 1, Time: 0.02, Wait: DefaultWait,
	},
	"screensaver": {
		Life: DefaultLife, Multiplier: DefaultMultiplier, Base: 1, Live: true, Infinite: true, Time: 0.03, Wait: 4.0,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
