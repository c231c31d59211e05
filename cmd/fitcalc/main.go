// Package main provides the CLI entrypoint for fitcalc.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/fitcalc/internal/config"
	"github.com/verte-zerg/fitcalc/internal/model"
	"github.com/verte-zerg/fitcalc/internal/report"
	"github.com/verte-zerg/fitcalc/internal/reportui"
	"github.com/verte-zerg/fitcalc/internal/workout"
)

const (
	formatLine  = "line"
	formatTable = "table"
	formatTUI   = "tui"

	defaultFormat = formatLine
	defaultColor  = false
)

var (
	outputFormat string
	outputColor  bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fitcalc",
		Short:         "Workout distance, speed and calorie calculator",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runReportCmd,
	}

	rootCmd.Flags().StringVar(&outputFormat, "format", defaultFormat, "output format: line, table or tui")
	rootCmd.Flags().BoolVar(&outputColor, "color", defaultColor, "colorize output")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newKindsCmd())

	return rootCmd
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "format", &outputFormat, fileCfg.Output.Format)
	applyBoolConfig(cmd, "color", &outputColor, fileCfg.Output.Color)

	cfg := model.OutputConfig{
		Format: strings.ToLower(strings.TrimSpace(outputFormat)),
		Color:  outputColor,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	reports, err := report.BuildReports(workout.SamplePackages())
	if err != nil {
		return err
	}
	return renderReports(cmd.OutOrStdout(), reports, cfg)
}

func renderReports(w io.Writer, reports []model.Report, cfg model.OutputConfig) error {
	switch cfg.Format {
	case formatTable:
		if err := report.RenderTable(w, reports, cfg.Color); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	case formatTUI:
		if !isTerminal(w) {
			logErrln("output is not a terminal; falling back to line output")
			return renderReports(w, reports, model.OutputConfig{Format: formatLine, Color: cfg.Color})
		}
		program := tea.NewProgram(reportui.NewModel(reports), tea.WithAltScreen(), tea.WithOutput(w))
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
	default:
		if err := report.RenderLines(w, reports, cfg.Color); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List supported workout codes",
		Args:  cobra.NoArgs,
		RunE:  runKindsCmd,
	}
}

func runKindsCmd(cmd *cobra.Command, _ []string) error {
	for _, kind := range workout.Kinds() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %-13s  %s\n", kind.Code, kind.Label, strings.Join(kind.Fields, " ")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# fitcalc configuration
# Uncomment a value to enable it. CLI flags override config values.

[output]
# format = %q          # line, table or tui
# color = %t           # Colorize workout labels
`,
		defaultFormat,
		defaultColor,
	)
}

func validateConfig(cfg model.OutputConfig) error {
	switch cfg.Format {
	case formatLine, formatTable, formatTUI:
		return nil
	default:
		return fmt.Errorf("--format must be one of %s, %s, %s", formatLine, formatTable, formatTUI)
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
