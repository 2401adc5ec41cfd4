// Command multisplitter runs the demo visualizer and a handful of
// diagnostic subcommands over persisted layout snapshots.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/treykane/multisplitter/internal/config"
	"github.com/treykane/multisplitter/internal/engine"
	"github.com/treykane/multisplitter/internal/persist"
	"github.com/treykane/multisplitter/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "multisplitter",
		Short: "Demo visualizer and diagnostics for the multisplitter layout engine",
	}
	root.AddCommand(newDemoCmd(), newSanityCmd(), newExportCmd())
	return root
}

func newDemoCmd() *cobra.Command {
	var width, height int
	var layoutPath string
	var watch bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive layout demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadOrInitConfig()
			if err != nil {
				return err
			}
			if width > 0 {
				cfg.ContainerWidth = width
			}
			if height > 0 {
				cfg.ContainerHeight = height
			}
			if layoutPath != "" {
				cfg.LayoutPath = layoutPath
			}

			m, err := tui.New(cfg)
			if err != nil {
				return err
			}
			if watch {
				m.EnableWatch()
			}
			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "container width (overrides config)")
	cmd.Flags().IntVar(&height, "height", 0, "container height (overrides config)")
	cmd.Flags().StringVar(&layoutPath, "layout", "", "layout snapshot path (overrides config)")
	cmd.Flags().BoolVar(&watch, "watch", false, "watch the layout file for external changes")
	return cmd
}

func newSanityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanity FILE",
		Short: "Load a layout snapshot and report any structural inconsistencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := persist.Load(args[0])
			if err != nil {
				return err
			}
			layout, err := engine.Deserialize(rec, engine.Capabilities{}, true, nil)
			if err != nil {
				return err
			}
			report := layout.CheckSanity()
			if report.OK() {
				fmt.Println("sane: no violations found")
				return nil
			}
			for _, v := range report.Violations {
				fmt.Printf("%s: %s\n", v.Code, v.Message)
			}
			return fmt.Errorf("%d sanity violation(s) found", len(report.Violations))
		},
	}
}

func newExportCmd() *cobra.Command {
	var size string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write a fresh, empty layout snapshot of the given size, to seed a new demo session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, h, err := parseSize(size)
			if err != nil {
				return err
			}
			layout := engine.NewLayout(engine.Size{W: w, H: h}, engine.Capabilities{}, engine.LayoutConfig{}, nil)
			return persist.Save(args[0], layout.Serialize())
		},
	}
	cmd.Flags().StringVar(&size, "size", "1920x1080", "container size as WxH")
	return cmd
}

func parseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --size %q, want WxH", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --size %q: %w", s, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --size %q: %w", s, err)
	}
	return width, height, nil
}

func loadOrInitConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, config.ErrNotConfigured) {
		return config.Config{}, err
	}

	layoutPath, perr := config.DefaultLayoutPath()
	if perr != nil {
		return config.Config{}, perr
	}
	cfg = config.Config{
		LayoutPath:         layoutPath,
		ContainerWidth:     120,
		ContainerHeight:    40,
		SeparatorThickness: 1,
		LogLevel:           "info",
	}
	if serr := config.Save(cfg); serr != nil {
		return config.Config{}, serr
	}
	return cfg, nil
}
