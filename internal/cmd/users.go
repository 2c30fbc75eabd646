package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"simterm/internal/config"
	"simterm/internal/credstore"
	"simterm/internal/style"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Inspect the local account registry",
	Long: `Inspect the accounts created with the terminal's signup command.

The registry is a plain JSON file under the settings directory. Accounts
are never updated or deleted by the terminal itself.

Examples:
  simterm users list        # Show all registered usernames`,
	RunE: requireSubcommand,
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all registered usernames",
	RunE:  runUsersList,
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	rootCmd.AddCommand(usersCmd)
}

func runUsersList(cmd *cobra.Command, args []string) error {
	dir, err := settingsDir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store := credstore.New(cfg.ResolveDataDir(dir))
	names := store.List()

	if len(names) == 0 {
		fmt.Println(style.Dim.Render("No accounts registered. Run simterm and use: signup <username> <password>"))
		return nil
	}

	fmt.Printf("%s\n", style.Bold.Render(fmt.Sprintf("%d account(s):", len(names))))
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
