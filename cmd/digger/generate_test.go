package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/hook-digger/internal/config"
)

func TestGenerateLevelDeterministic(t *testing.T) {
	cfg := config.DefaultDiggerConfig()

	a, err := generateLevel(cfg, "", 3, 42)
	if err != nil {
		t.Fatalf("generateLevel: %v", err)
	}
	b, err := generateLevel(cfg, "", 3, 42)
	if err != nil {
		t.Fatalf("generateLevel: %v", err)
	}

	if len(a.Objects) == 0 || len(a.Objects) != len(b.Objects) {
		t.Fatalf("object counts %d and %d", len(a.Objects), len(b.Objects))
	}
	for i := range a.Objects {
		if a.Objects[i] != b.Objects[i] {
			t.Fatalf("object %d differs: %+v vs %+v", i, a.Objects[i], b.Objects[i])
		}
	}
	if a.Target != cfg.TargetFor(3) {
		t.Errorf("target = %d, want %d", a.Target, cfg.TargetFor(3))
	}
	for _, o := range a.Objects {
		if o.X < a.Band.MinX || o.X > a.Band.MaxX || o.Y < a.Band.MinY || o.Y > a.Band.MaxY {
			t.Errorf("object %+v outside band %+v", o, a.Band)
		}
	}
}

func TestGenerateLevelRejectsBadPreset(t *testing.T) {
	if _, err := generateLevel(config.DefaultDiggerConfig(), "brutal", 1, 1); err == nil {
		t.Error("unknown preset accepted")
	}
}

func TestWriteLevelFormats(t *testing.T) {
	dump, err := generateLevel(config.DefaultDiggerConfig(), "fixed", 1, 7)
	if err != nil {
		t.Fatalf("generateLevel: %v", err)
	}

	var table bytes.Buffer
	if err := writeLevel(&table, "table", dump); err != nil {
		t.Fatalf("table: %v", err)
	}
	if !strings.Contains(table.String(), "Level 1  seed 7  target 650") {
		t.Errorf("table header missing:\n%s", table.String())
	}

	var out bytes.Buffer
	if err := writeLevel(&out, "yaml", dump); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var back levelDump
	if err := yaml.Unmarshal(out.Bytes(), &back); err != nil {
		t.Fatalf("yaml output does not parse: %v", err)
	}
	if back.Seed != 7 || len(back.Objects) != len(dump.Objects) {
		t.Errorf("decoded dump = %+v", back)
	}

	if err := writeLevel(&out, "xml", dump); err == nil {
		t.Error("unknown format accepted")
	}
}
