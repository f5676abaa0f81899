package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/seliware/genremap/graph"
	"github.com/seliware/genremap/view"
)

var version = "0.3.0"

var (
	flagSettings string
	flagLogPath  string
	flagSound    bool
	flagNoLabels bool
)

var errBad = color.New(color.FgRed, color.Bold)

var rootCmd = &cobra.Command{
	Use:     "genremap <dataset.json>",
	Short:   "Interactive explorer for the genre influence graph",
	Long:    "genremap renders a precomputed genre graph in the terminal:\npan with the mouse, zoom with the wheel, click to select a genre\nand highlight everything it influenced.",
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return run(args[0])
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagSettings, "settings", "", "TOML settings file")
	rootCmd.Flags().StringVar(&flagLogPath, "log", "", "write a debug log to this file")
	rootCmd.Flags().BoolVar(&flagSound, "sound", false, "play audio cues on selection")
	rootCmd.Flags().BoolVar(&flagNoLabels, "no-labels", false, "start with labels hidden")
}

func run(datasetPath string) error {
	logger := slog.New(slog.DiscardHandler)
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, nil))
	}

	settings := view.DefaultSettings()
	if flagSettings != "" {
		var err error
		settings, err = view.LoadSettings(flagSettings)
		if err != nil {
			return err
		}
	}
	if flagSound {
		settings.Sound = true
	}
	if flagNoLabels {
		settings.ShowLabels = false
	}

	f, err := os.Open(datasetPath)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	g, err := graph.Decode(f)
	f.Close()
	if err != nil {
		return err
	}
	logger.Info("dataset loaded",
		"nodes", len(g.Nodes), "edges", len(g.Edges), "max_degree", g.MaxDegree)

	// No fallback exists when the terminal cannot be acquired; fail
	// loudly instead of presenting a blank view
	screen, err := tcell.NewScreen()
	if err != nil {
		errBad.Fprintf(os.Stderr, "genremap: cannot acquire a terminal screen: %v\n", err)
		return err
	}
	if err := screen.Init(); err != nil {
		errBad.Fprintf(os.Stderr, "genremap: terminal initialization failed: %v\n", err)
		return err
	}
	defer screen.Fini()

	v, err := view.Mount(screen, g, settings, nil, logger)
	if err != nil {
		return err
	}
	v.OnSelect = func(id graph.NodeID) {
		if n, ok := g.Node(id); ok {
			logger.Info("selected", "id", id, "label", n.Label)
		}
	}

	return v.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		errBad.Fprintf(os.Stderr, "genremap: %v\n", err)
		os.Exit(1)
	}
}
