package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validManifest = `# test manifest
[package]
name = "demo"

[generate]
dir = "src/ident"
sets = ["difference", "intersection"]
`

func writeManifest(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, "kwset.toml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write kwset.toml: %v", err)
	}
	return path
}

func TestLoad_WalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, validManifest)

	nested := filepath.Join(root, "src", "ident")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	manifest, ok, err := Load(nested)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("Load did not find kwset.toml")
	}
	if manifest.Path != path {
		t.Errorf("manifest.Path = %q, want %q", manifest.Path, path)
	}
	if manifest.Root != root {
		t.Errorf("manifest.Root = %q, want %q", manifest.Root, root)
	}
	if manifest.Config.Package.Name != "demo" {
		t.Errorf("package name = %q, want demo", manifest.Config.Package.Name)
	}
	if manifest.Config.Generate.Dir != "src/ident" {
		t.Errorf("generate dir = %q, want src/ident", manifest.Config.Generate.Dir)
	}
	if got := manifest.Config.Generate.Sets; len(got) != 2 || got[0] != "difference" || got[1] != "intersection" {
		t.Errorf("generate sets = %v", got)
	}
}

func TestLoad_NearestManifestWins(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, validManifest)

	inner := filepath.Join(root, "sub")
	if err := os.MkdirAll(inner, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	innerPath := writeManifest(t, inner, strings.ReplaceAll(validManifest, "demo", "inner"))

	manifest, ok, err := Load(inner)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if manifest.Path != innerPath {
		t.Errorf("manifest.Path = %q, want the nested one %q", manifest.Path, innerPath)
	}
	if manifest.Config.Package.Name != "inner" {
		t.Errorf("package name = %q, want inner", manifest.Config.Package.Name)
	}
}

func TestLoad_NotFound(t *testing.T) {
	manifest, ok, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok || manifest != nil {
		t.Fatalf("Load = %+v, ok=%v; want none", manifest, ok)
	}
}

func TestLoadConfig_Rejections(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{
			"no package table",
			"[generate]\ndir = \".\"\nsets = [\"difference\"]\n",
			"missing [package]",
		},
		{
			"no package name",
			"[package]\n[generate]\ndir = \".\"\nsets = [\"difference\"]\n",
			"missing [package].name",
		},
		{
			"blank package name",
			"[package]\nname = \"  \"\n[generate]\ndir = \".\"\nsets = [\"difference\"]\n",
			"missing [package].name",
		},
		{
			"no generate table",
			"[package]\nname = \"demo\"\n",
			"missing [generate]",
		},
		{
			"no generate dir",
			"[package]\nname = \"demo\"\n[generate]\nsets = [\"difference\"]\n",
			"missing [generate].dir",
		},
		{
			"empty sets",
			"[package]\nname = \"demo\"\n[generate]\ndir = \".\"\nsets = []\n",
			"missing [generate].sets",
		},
		{
			"broken toml",
			"[package\n",
			"failed to parse TOML",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), c.data)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("LoadConfig succeeded, want error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Errorf("error = %q, want it to mention %q", err, c.want)
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("error = %q, want it to carry the manifest path", err)
			}
		})
	}
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeManifest(t, t.TempDir(), validManifest)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Package.Name != "demo" || cfg.Generate.Dir != "src/ident" {
		t.Errorf("cfg = %+v", cfg)
	}
}
