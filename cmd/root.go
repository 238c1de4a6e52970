package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/lsgit/internal/config"
	"github.com/fakeyudi/lsgit/internal/render"
)

// Version is set at build time.
var Version = "dev"

var (
	themeFlag  string
	formatFlag string
	colorFlag  string
	verbose    bool
)

// cfg holds the merged configuration, populated in PersistentPreRunE.
var cfg config.Config

// logger is created in PersistentPreRunE and writes to stderr.
var logger *logrus.Logger

// now is the reference time for "time since" columns.
var now = time.Now

var rootCmd = &cobra.Command{
	Use:   "lsgit [path]",
	Short: "List a directory with the last commit that touched each entry",
	Long: `lsgit lists the entries of a directory inside a git repository together
with the summary and age of the most recent commit that changed each of them.
Merge commits are ignored; untracked entries are not shown.`,
	Version:      Version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logrus.New()
		logger.SetOutput(cmd.ErrOrStderr())
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.WarnLevel)
		}

		// Load and merge config files.
		global, err := config.LoadGlobal()
		if err != nil {
			return fmt.Errorf("loading global config: %w", err)
		}
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		project, err := config.LoadProject(cwd)
		if err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}
		cfg = config.Merge(global, project)

		// Flags override config files.
		if themeFlag != "" {
			cfg.Theme = themeFlag
		}
		if formatFlag != "" {
			cfg.Format = formatFlag
		}
		if colorFlag != "" {
			cfg.Color = colorFlag
		}
		logger.WithFields(logrus.Fields{
			"theme":  cfg.Theme,
			"format": cfg.Format,
			"color":  cfg.Color,
		}).Debug("configuration loaded")
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		out := cmd.OutOrStdout()
		renderer, err := newRenderer(cfg, out)
		if err != nil {
			return err
		}

		entries, err := listEntries(dir, logger)
		if err != nil {
			return err
		}
		return renderer.Render(out, render.BuildRows(entries, now()))
	},
}

// newRenderer selects the output renderer for c.
func newRenderer(c config.Config, out io.Writer) (render.Renderer, error) {
	switch c.Format {
	case "json":
		return &render.JSONRenderer{}, nil
	case "table":
		color, err := useColor(c.Color, out)
		if err != nil {
			return nil, err
		}
		return &render.TableRenderer{
			Theme:        render.ParseTheme(c.Theme),
			MaxNameWidth: c.MaxNameWidth,
			Color:        color,
		}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want table or json)", c.Format)
	}
}

// useColor resolves a color mode; "auto" enables color only for terminals.
func useColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
	}
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging to stderr")
	rootCmd.Flags().StringVarP(&themeFlag, "theme", "t", "", "color theme: dimm, light, dark or contrast")
	rootCmd.Flags().StringVar(&formatFlag, "format", "", "output format: table or json")
	rootCmd.Flags().StringVar(&colorFlag, "color", "", "color output: auto, always or never")
}
