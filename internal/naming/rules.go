package naming

import "strings"

// Rule is one literal, case-sensitive substring substitution. Rules are
// evaluated in order by [Normalize]; every rule runs, and each one sees the
// output of the rule before it.
type Rule struct {
	Name        string
	Pattern     string
	Replacement string
}

// apply replaces every occurrence of r.Pattern in name.
func (r Rule) apply(name string) string {
	return strings.ReplaceAll(name, r.Pattern, r.Replacement)
}

// ChannelRules map vendor and source suffixes onto the canonical channel
// names. Patterns end at the extension dot so they only match a suffix
// directly in front of an extension.
var ChannelRules = []Rule{
	// Albedo
	{"BaseColor", "BaseColor.", "Albedo."},
	{"Color", "Color.", "Albedo."},
	{"Diffuse", "Diffuse.", "Albedo."},
	{"diff_2k", "diff_2k.", "Albedo."},
	{"albedo", "albedo.", "Albedo."},

	// Normal
	{"NormalGL", "NormalGL.", "Normal."},
	{"NormalDX", "NormalDX.", "Normal."},
	{"normal", "normal.", "Normal."},
	{"nor_2k", "nor_2k.", "Normal."},
	{"nor_gl_2k", "nor_gl_2k.", "Normal."},

	// Roughness
	{"roughness", "roughness.", "Roughness."},
	{"rough_2k", "rough_2k.", "Roughness."},
	{"spec_2k", "spec_2k.", "Roughness."},

	// Metallic
	{"Metalness", "Metalness.", "Metallic."},

	// AmbientOcclusion
	{"AO", "AO.", "AmbientOcclusion."},
	{"ao", "ao.", "AmbientOcclusion."},
	{"ao_2k", "ao_2k.", "AmbientOcclusion."},
	{"ambientOcclusion", "ambientOcclusion.", "AmbientOcclusion."},
}

// AssetRules rename specific known source assets whose names carry no
// channel suffix at all. Outputs are kept exactly as the importer already
// expects them, including "ShcArtaAlbedo".
var AssetRules = []Rule{
	{"plant_22", "plant_22.png", "PlantAlbedo.png"},
	{"SHC art", "SHC art.jpg", "ShcArtaAlbedo.jpg"},
	{"SHC art 2", "SHC art 2.jpg", "ShcArt2Albedo.jpg"},
	{"SHC Tree Leaves", "SHC Tree Leaves 4096px .jpg", "ShcTreeLeavesAlbedo.jpg"},
	{"SHC full planet", "SHC-full-planet-edit-1.jpg", "ShcFullPlanetAlbedo.jpg"},
	{"Ultrawide screen", "Ultrawide screen.jpg", "UltrawideScreenAlbedo.jpg"},
	{"pc hardware", "pc hardware.jpg", "PcHardwareAlbedo.jpg"},
	{"cycles10", "cylces10.jpg", "Cycles10Albedo.jpg"},
}

// Rules is the full ordered table: channel rules, then asset rules.
var Rules = concatRules(ChannelRules, AssetRules)

func concatRules(tables ...[]Rule) []Rule {
	var out []Rule
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

// Normalize returns the canonical file name for name.
func Normalize(name string) string {
	for _, r := range Rules {
		name = r.apply(name)
	}
	return name
}

// Apply is [Normalize] that also returns the rules that changed the name,
// in the order they fired.
func Apply(name string) (string, []Rule) {
	var fired []Rule
	for _, r := range Rules {
		next := r.apply(name)
		if next != name {
			fired = append(fired, r)
		}
		name = next
	}
	return name, fired
}
