package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/art/project", "/art/project"},
		{"single trailing slash", "/art/project/", "/art/project"},
		{"multiple trailing slashes", "/art/project///", "/art/project"},
		{"root path", "/", "/"},
		{"relative path", "project", "project"},
		{"relative with slash", "project/", "project"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ScenePath = "scene.json"
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Paths(t *testing.T) {
	tests := []struct {
		name    string
		scene   string
		output  string
		project string
		wantErr bool
	}{
		{"json scene", "room.json", "", ".", false},
		{"yaml scene", "room.yaml", "", ".", false},
		{"yml scene upper ext", "room.YML", "", ".", false},
		{"missing scene", "", "", ".", true},
		{"unsupported scene ext", "room.blend", "", ".", true},
		{"unsupported output ext", "room.json", "out.txt", ".", true},
		{"yaml output from json", "room.json", "out.yaml", ".", false},
		{"empty project dir", "room.json", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ScenePath = tt.scene
			cfg.OutputPath = tt.output
			cfg.ProjectDir = tt.project
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTexturesDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProjectDir = "/art/room"
	want := filepath.Join("/art/room", "textures")
	if got := cfg.TexturesDir(); got != want {
		t.Errorf("TexturesDir() = %q, want %q", got, want)
	}
}

func TestSceneOutputPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScenePath = "room.json"
	if got := cfg.SceneOutputPath(); got != "room.json" {
		t.Errorf("default output = %q, want room.json", got)
	}
	cfg.OutputPath = "room.normalized.yaml"
	if got := cfg.SceneOutputPath(); got != "room.normalized.yaml" {
		t.Errorf("explicit output = %q, want room.normalized.yaml", got)
	}
}

func TestRegisterFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantColor ColorMode
		wantDry   bool
		wantDir   string
		wantOut   string
	}{
		{"defaults", nil, ColorAuto, false, ".", ""},
		{"no-color wins over color", []string{"--color", "--no-color"}, ColorNever, false, ".", ""},
		{"force color", []string{"--color"}, ColorAlways, false, ".", ""},
		{"short dry run", []string{"-d"}, ColorAuto, true, ".", ""},
		{"project dir trailing slash", []string{"-p", "/art/room/"}, ColorAuto, false, "/art/room", ""},
		{"output", []string{"--output", "out.json"}, ColorAuto, false, ".", "out.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			fs := pflag.NewFlagSet("texnorm", pflag.ContinueOnError)
			f := RegisterFlags(fs, &cfg)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse: %v", err)
			}
			f.Apply(&cfg)
			if cfg.ColorMode != tt.wantColor {
				t.Errorf("ColorMode = %q, want %q", cfg.ColorMode, tt.wantColor)
			}
			if cfg.DryRun != tt.wantDry {
				t.Errorf("DryRun = %v, want %v", cfg.DryRun, tt.wantDry)
			}
			if cfg.ProjectDir != tt.wantDir {
				t.Errorf("ProjectDir = %q, want %q", cfg.ProjectDir, tt.wantDir)
			}
			if cfg.OutputPath != tt.wantOut {
				t.Errorf("OutputPath = %q, want %q", cfg.OutputPath, tt.wantOut)
			}
		})
	}
}

func TestParseArgs(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseArgs(&cfg, []string{"room.json"}); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if cfg.ScenePath != "room.json" {
		t.Errorf("ScenePath = %q", cfg.ScenePath)
	}
	if err := ParseArgs(&cfg, nil); err == nil {
		t.Error("expected error for zero args")
	}
	if err := ParseArgs(&cfg, []string{"a.json", "b.json"}); err == nil {
		t.Error("expected error for two args")
	}
}
