package view

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/seliware/genremap/graph"
)

// Settings mirrors the preferences collaborator: per-edge-type
// visibility, hop budget, behavior flags and the optional externally
// supplied highlight path
type Settings struct {
	ShowDerivative  bool `toml:"show_derivative"`
	ShowSubgenre    bool `toml:"show_subgenre"`
	ShowFusionGenre bool `toml:"show_fusion_genre"`

	// MaxInfluenceDistance is the BFS hop budget for coverage nets
	MaxInfluenceDistance int `toml:"max_influence_distance"`

	ZoomOnSelect bool    `toml:"zoom_on_select"`
	ShowLabels   bool    `toml:"show_labels"`
	ArrowScale   float64 `toml:"arrow_scale"`
	Sound        bool    `toml:"sound"`

	// SidePanelWidth shifts the projection center to compensate for a
	// docked panel, in cells
	SidePanelWidth int `toml:"side_panel_width"`

	// HighlightPath, when set, replaces the radial coverage net on
	// selection with a directional path highlight
	HighlightPath []graph.NodeID `toml:"highlight_path"`
}

// DefaultSettings returns the stock preferences
func DefaultSettings() Settings {
	return Settings{
		ShowDerivative:       true,
		ShowSubgenre:         true,
		ShowFusionGenre:      true,
		MaxInfluenceDistance: 2,
		ZoomOnSelect:         false,
		ShowLabels:           true,
		ArrowScale:           1.0,
	}
}

// VisibleMask returns the per-edge-type visibility array indexed by
// graph.EdgeType
func (s *Settings) VisibleMask() [graph.EdgeTypeCount]bool {
	return [graph.EdgeTypeCount]bool{
		graph.Derivative:  s.ShowDerivative,
		graph.Subgenre:    s.ShowSubgenre,
		graph.FusionGenre: s.ShowFusionGenre,
	}
}

// LoadSettings reads a TOML settings file over the defaults
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return s, fmt.Errorf("load settings %s: %w", path, err)
	}
	return s, nil
}
