// Package cmd implements the simterm command-line interface.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"simterm/internal/config"
	"simterm/internal/credstore"
	"simterm/internal/session"
	"simterm/internal/tui"
)

var (
	configDir  string // --config: settings directory override
	startTheme string // --theme: startup theme override
)

var rootCmd = &cobra.Command{
	Use:   "simterm",
	Short: "A simulated terminal with a small fixed command set",
	Long: `simterm renders an interactive terminal simulation: a scrolling
transcript and an input line wired to a fixed set of commands. There is
no real filesystem and no real shell behind it.

Accounts created with 'signup' persist in a local JSON registry;
everything else lives in memory for the duration of the run.

Commands inside the terminal:
  help, ls, pwd, echo, theme, login, signup, clear, exit

Examples:
  simterm                   # start with settings from the config dir
  simterm --theme light     # start in light mode
  simterm users list        # show registered accounts`,
	RunE:          runTerminal,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "settings directory (default: OS config dir)")
	rootCmd.Flags().StringVar(&startTheme, "theme", "", "startup theme: dark or light")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// requireSubcommand is the RunE for commands that only group subcommands.
func requireSubcommand(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// settingsDir resolves the settings directory, honoring --config.
func settingsDir() (string, error) {
	if configDir != "" {
		return configDir, nil
	}
	return config.DefaultDir()
}

func runTerminal(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("simterm requires an interactive terminal")
	}

	dir, err := settingsDir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	theme := cfg.Theme
	if startTheme != "" {
		theme = startTheme
	}

	sess := session.New()
	if theme == string(session.ThemeLight) {
		sess.Theme = session.ThemeLight
	}

	store := credstore.New(cfg.ResolveDataDir(dir))
	model := tui.New(cfg.Host, sess, store)

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
