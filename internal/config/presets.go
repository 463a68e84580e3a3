package config

import "sort"

var Presets = map[string]*Config{
	"zero":     preset(0, 7),
	"identity": preset(1, 9),
	"small":    preset(3, 4),
	"square":   preset(5, 5),
	"wide":     preset(12, 3),
	"demo": {
		Multiplier: 2, Multiplicand: 3,
		Display: DisplayConfig{Print: true, Clear: true, Sleep: true, DelayMs: DefaultDelayMs, Window: DefaultWindow, Theme: DefaultTheme},
		Log:     LogConfig{Level: DefaultLogLevel},
	},
}

func preset(a, b int) *Config {
	cfg := DefaultConfig()
	cfg.Multiplier, cfg.Multiplicand = a, b
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
