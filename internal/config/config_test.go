package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kr/pretty"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	no := false
	cases := []struct {
		name string
		file string
		data string
		want Config
	}{
		{
			name: "yaml",
			file: "geocalc.yaml",
			data: "prompt: \"geo> \"\nprecision: 128\nlog_level: debug\nbanner: false\n",
			want: Config{Prompt: "geo> ", Precision: 128, LogLevel: "debug", Banner: &no},
		},
		{
			name: "yaml-partial",
			file: "partial.yml",
			data: "precision: 32\n",
			want: Config{Prompt: "> ", Precision: 32, LogLevel: "warn"},
		},
		{
			name: "toml",
			file: "geocalc.toml",
			data: "prompt = \">> \"\nlog_level = \"info\"\nbanner = false\n",
			want: Config{Prompt: ">> ", Precision: 64, LogLevel: "info", Banner: &no},
		},
		{
			name: "empty",
			file: "empty.yaml",
			data: "",
			want: Config{Prompt: "> ", Precision: 64, LogLevel: "warn"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := Load(write(t, c.file, c.data))
			if err != nil {
				t.Fatal(err)
			}
			if c.want.Banner == nil {
				c.want.Banner = Default().Banner
			}
			if d := pretty.Diff(&c.want, cfg); len(d) != 0 {
				t.Errorf("wrong config: %v", d)
			}
		})
	}
}

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("missing default file: %v", err)
	}
	if d := pretty.Diff(Default(), cfg); len(d) != 0 {
		t.Errorf("wrong config: %v", d)
	}
	if !cfg.ShowBanner() {
		t.Error("banner disabled by default")
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("want not exist, got %v", err)
		}
	})
	cases := []struct {
		name string
		file string
		data string
	}{
		{"yaml-syntax", "bad.yaml", "precision: [1\n"},
		{"yaml-type", "bad.yaml", "precision: -1\n"},
		{"toml-syntax", "bad.toml", "precision = \n"},
		{"toml-type", "bad.toml", "banner = \"yes\"\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if cfg, err := Load(write(t, c.file, c.data)); err == nil {
				t.Errorf("no error, got %# v", pretty.Formatter(cfg))
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := (&Config{}).Validate(); err == nil {
		t.Error("zero precision is valid")
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("default is invalid: %v", err)
	}
	off := false
	if (&Config{Banner: &off}).ShowBanner() {
		t.Error("banner shown when disabled")
	}
}
