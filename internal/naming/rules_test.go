package naming

import (
	"fmt"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		// Albedo
		{"BaseColor png", "rock_BaseColor.png", "rock_Albedo.png"},
		{"BaseColor jpg", "rock_BaseColor.jpg", "rock_Albedo.jpg"},
		{"Color", "wood_Color.jpg", "wood_Albedo.jpg"},
		{"Diffuse", "wall_Diffuse.jpg", "wall_Albedo.jpg"},
		{"diff_2k", "bark_diff_2k.jpg", "bark_Albedo.jpg"},
		{"lowercase albedo", "tile_albedo.png", "tile_Albedo.png"},

		// Normal
		{"NormalGL", "wall_NormalGL.jpg", "wall_Normal.jpg"},
		{"NormalDX", "tile_NormalDX.png", "tile_Normal.png"},
		{"lowercase normal", "tile_normal.jpg", "tile_Normal.jpg"},
		{"nor_2k", "bark_nor_2k.jpg", "bark_Normal.jpg"},
		{"nor_gl_2k", "bark_nor_gl_2k.jpg", "bark_Normal.jpg"},

		// Roughness
		{"lowercase roughness", "tile_roughness.jpg", "tile_Roughness.jpg"},
		{"rough_2k bare", "rough_2k.jpg", "Roughness.jpg"},
		{"rough_2k prefixed", "bark_rough_2k.jpg", "bark_Roughness.jpg"},
		{"spec_2k", "bark_spec_2k.jpg", "bark_Roughness.jpg"},

		// Metallic
		{"Metalness", "plate_Metalness.jpg", "plate_Metallic.jpg"},

		// AmbientOcclusion
		{"AO png", "brick_AO.png", "brick_AmbientOcclusion.png"},
		{"AO jpg", "brick_AO.jpg", "brick_AmbientOcclusion.jpg"},
		{"lowercase ao", "brick_ao.jpg", "brick_AmbientOcclusion.jpg"},
		{"ao_2k", "bark_ao_2k.jpg", "bark_AmbientOcclusion.jpg"},
		{"camel ambientOcclusion", "tile_ambientOcclusion.png", "tile_AmbientOcclusion.png"},

		// One-off assets
		{"plant", "plant_22.png", "PlantAlbedo.png"},
		{"SHC art", "SHC art.jpg", "ShcArtaAlbedo.jpg"},
		{"SHC art 2", "SHC art 2.jpg", "ShcArt2Albedo.jpg"},
		{"SHC tree leaves", "SHC Tree Leaves 4096px .jpg", "ShcTreeLeavesAlbedo.jpg"},
		{"SHC planet", "SHC-full-planet-edit-1.jpg", "ShcFullPlanetAlbedo.jpg"},
		{"ultrawide", "Ultrawide screen.jpg", "UltrawideScreenAlbedo.jpg"},
		{"pc hardware", "pc hardware.jpg", "PcHardwareAlbedo.jpg"},
		{"cycles", "cylces10.jpg", "Cycles10Albedo.jpg"},

		// Channel rules match any extension
		{"rough_2k png", "rough_2k.png", "Roughness.png"},
		{"Color png", "rock_Color.png", "rock_Albedo.png"},
		{"Diffuse tga", "wall_Diffuse.tga", "wall_Albedo.tga"},

		// No rule applies
		{"already canonical", "rock_Albedo.png", "rock_Albedo.png"},
		{"plain name", "stone.png", "stone.png"},
		{"hdri", "sky_hdri.exr", "sky_hdri.exr"},
		{"suffix without dot", "BaseColor_rock.png", "BaseColor_rock.png"},
		{"case sensitive", "rock_basecolor.png", "rock_basecolor.png"},

		// Literal substring semantics, not token-aware
		{"ao inside a word", "cacao.jpg", "cacAmbientOcclusion.jpg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"rock_BaseColor.png", "wood_Color.jpg", "wall_Diffuse.jpg", "bark_diff_2k.jpg",
		"tile_albedo.png", "wall_NormalGL.jpg", "tile_NormalDX.png", "tile_normal.jpg",
		"bark_nor_2k.jpg", "bark_nor_gl_2k.jpg", "tile_roughness.jpg", "rough_2k.jpg",
		"bark_spec_2k.jpg", "plate_Metalness.jpg", "brick_AO.png", "brick_ao.jpg",
		"bark_ao_2k.jpg", "tile_ambientOcclusion.png", "plant_22.png", "SHC art.jpg",
		"SHC art 2.jpg", "SHC Tree Leaves 4096px .jpg", "SHC-full-planet-edit-1.jpg",
		"Ultrawide screen.jpg", "pc hardware.jpg", "cylces10.jpg", "stone.png",
		"cacao.jpg", "rock_Albedo.png", "",
	}
	for _, r := range Rules {
		inputs = append(inputs, "x_"+r.Pattern+"png", r.Replacement+"jpg")
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestApply_OrderMatters(t *testing.T) {
	got, fired := Apply("rock_BaseColor.png")
	if got != "rock_Albedo.png" {
		t.Fatalf("Apply = %q", got)
	}
	if len(fired) != 1 || fired[0].Name != "BaseColor" {
		t.Errorf("fired = %v, want only BaseColor (Color must not fire on consumed text)", ruleNames(fired))
	}

	got, fired = Apply("stone.png")
	if got != "stone.png" || len(fired) != 0 {
		t.Errorf("Apply(stone.png) = %q, fired %v", got, ruleNames(fired))
	}
}

func TestApply_MatchesNormalize(t *testing.T) {
	for _, in := range []string{"rock_BaseColor.png", "cacao.jpg", "plant_22.png", "x.png"} {
		got, _ := Apply(in)
		if want := Normalize(in); got != want {
			t.Errorf("Apply(%q) = %q, Normalize = %q", in, got, want)
		}
	}
}

func TestRules_Table(t *testing.T) {
	if len(Rules) != len(ChannelRules)+len(AssetRules) {
		t.Fatalf("Rules has %d entries, want %d", len(Rules), len(ChannelRules)+len(AssetRules))
	}
	if Rules[0].Pattern != "BaseColor." || Rules[1].Pattern != "Color." {
		t.Errorf("BaseColor must precede Color, got %q, %q", Rules[0].Pattern, Rules[1].Pattern)
	}
	seen := map[string]bool{}
	for i, r := range Rules {
		if r.Pattern == "" || r.Name == "" {
			t.Errorf("rule %d has empty field: %+v", i, r)
		}
		if seen[r.Pattern] {
			t.Errorf("duplicate pattern %q", r.Pattern)
		}
		seen[r.Pattern] = true
	}
}

func ruleNames(rules []Rule) string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return fmt.Sprintf("[%s]", strings.Join(names, ", "))
}
