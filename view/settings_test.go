package view

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/seliware/genremap/graph"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !s.ShowDerivative || !s.ShowSubgenre || !s.ShowFusionGenre {
		t.Error("all edge types visible by default")
	}
	if s.MaxInfluenceDistance != 2 {
		t.Errorf("MaxInfluenceDistance = %d, want 2", s.MaxInfluenceDistance)
	}
	if !s.ShowLabels {
		t.Error("labels on by default")
	}
	if s.ZoomOnSelect {
		t.Error("zoom on select off by default")
	}
	if s.ArrowScale != 1.0 {
		t.Errorf("ArrowScale = %v, want 1.0", s.ArrowScale)
	}
	if s.Sound {
		t.Error("sound off by default")
	}
}

func TestVisibleMask(t *testing.T) {
	s := DefaultSettings()
	s.ShowSubgenre = false

	mask := s.VisibleMask()
	if !mask[graph.Derivative] || mask[graph.Subgenre] || !mask[graph.FusionGenre] {
		t.Errorf("mask = %v, want subgenre hidden only", mask)
	}
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	data := `
show_subgenre = false
max_influence_distance = 4
zoom_on_select = true
highlight_path = [0, 2, 5]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.ShowSubgenre {
		t.Error("show_subgenre not overridden")
	}
	if s.MaxInfluenceDistance != 4 {
		t.Errorf("MaxInfluenceDistance = %d, want 4", s.MaxInfluenceDistance)
	}
	if !s.ZoomOnSelect {
		t.Error("zoom_on_select not overridden")
	}
	// untouched keys keep the defaults
	if !s.ShowDerivative || !s.ShowLabels {
		t.Error("unset keys lost their defaults")
	}
	want := []graph.NodeID{0, 2, 5}
	if len(s.HighlightPath) != len(want) {
		t.Fatalf("HighlightPath = %v, want %v", s.HighlightPath, want)
	}
	for i := range want {
		if s.HighlightPath[i] != want[i] {
			t.Fatalf("HighlightPath = %v, want %v", s.HighlightPath, want)
		}
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	// callers may proceed with what came back
	if s.MaxInfluenceDistance != 2 || !s.ShowLabels {
		t.Errorf("fallback settings are not the defaults: %+v", s)
	}
}
