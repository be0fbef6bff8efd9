package domain

import (
	"fmt"
	"sort"
)

// ClimatePreset is the typical ambient envelope for a city. Presets bias the
// synthetic climate draw and populate the form UI; they never leak into the
// trained feature set.
type ClimatePreset struct {
	City        string
	Region      string
	TempMin     float64 // °C
	TempMax     float64
	HumidityMin float64 // %
	HumidityMax float64
}

// UnknownCityError reports a lookup for a city absent from the preset table.
// Callers fall back to DefaultClimate or reject the input.
type UnknownCityError struct {
	City string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("unknown city %q", e.City)
}

// regionDef groups cities sharing a climate envelope.
type regionDef struct {
	region           string
	cities           []string
	tempMin, tempMax float64
	humMin, humMax   float64
}

// Indian cities grouped by region with realistic temperature/humidity ranges.
var regionDefs = []regionDef{
	{"North", []string{"Delhi", "Chandigarh", "Lucknow", "Jaipur", "Srinagar"}, 10, 25, 20, 80},
	{"South", []string{"Chennai", "Kochi", "Hyderabad", "Bengaluru", "Pune", "Madurai"}, 24, 34, 50, 90},
	{"West", []string{"Mumbai", "Goa", "Ahmedabad", "Surat"}, 23, 35, 50, 90},
	{"East", []string{"Kolkata", "Bhubaneswar", "Guwahati", "Patna"}, 22, 32, 50, 95},
	{"Central", []string{"Bhopal", "Nagpur", "Indore", "Raipur"}, 20, 32, 30, 85},
	{"NorthEast", []string{"Imphal", "Shillong"}, 15, 27, 60, 98},
}

// cityPresets is the immutable city-keyed lookup table, built once at
// process start.
var cityPresets = buildCityPresets()

func buildCityPresets() map[string]ClimatePreset {
	m := make(map[string]ClimatePreset)
	for _, d := range regionDefs {
		for _, c := range d.cities {
			m[c] = ClimatePreset{
				City:        c,
				Region:      d.region,
				TempMin:     d.tempMin,
				TempMax:     d.tempMax,
				HumidityMin: d.humMin,
				HumidityMax: d.humMax,
			}
		}
	}
	return m
}

// LookupCity returns the climate preset for a city, or UnknownCityError.
func LookupCity(city string) (ClimatePreset, error) {
	p, ok := cityPresets[city]
	if !ok {
		return ClimatePreset{}, &UnknownCityError{City: city}
	}
	return p, nil
}

// Cities returns every preset city, sorted.
func Cities() []string {
	out := make([]string, 0, len(cityPresets))
	for c := range cityPresets {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// DefaultClimate returns the envelope spanning all presets, used when a
// record is generated without a city.
func DefaultClimate() ClimatePreset {
	def := ClimatePreset{}
	first := true
	for _, p := range cityPresets {
		if first {
			def.TempMin, def.TempMax = p.TempMin, p.TempMax
			def.HumidityMin, def.HumidityMax = p.HumidityMin, p.HumidityMax
			first = false
			continue
		}
		def.TempMin = min(def.TempMin, p.TempMin)
		def.TempMax = max(def.TempMax, p.TempMax)
		def.HumidityMin = min(def.HumidityMin, p.HumidityMin)
		def.HumidityMax = max(def.HumidityMax, p.HumidityMax)
	}
	return def
}
