package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sigep/internal/storage"
)

var flagStoreName string

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage scenes stored in the database",
	Long: `Scenes are stored by name in the SQLite database given by --db.

Examples:
  sigep store put --scene ./scenes/demo.yaml
  sigep store put --name backup
  sigep store list
  sigep store get demo > demo.yaml
  sigep store rm demo
  sigep view --stored demo`,
}

var storePutCmd = &cobra.Command{
	Use:   "put",
	Short: "Store the current scene, replacing any scene with the same name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sc, err := loadScene()
		if err != nil {
			return err
		}
		if flagStoreName != "" {
			sc.Name = flagStoreName
		}
		return withStore(func(store *storage.Store) error {
			if err := store.SaveScene(sc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %q (%d shapes)\n", sc.Name, sc.Len())
			return nil
		})
	},
}

var storeGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print a stored scene as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			sc, err := store.LoadScene(args[0])
			if err != nil {
				return err
			}
			data, err := sc.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		})
	},
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored scenes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(func(store *storage.Store) error {
			entries, err := store.ListScenes()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No stored scenes.")
				return nil
			}

			maxNameLen := 4 // "Name" header
			for _, e := range entries {
				maxNameLen = max(maxNameLen, len(e.Name))
			}
			fmt.Fprintf(out, "  %-*s  %6s  %6s  %s\n", maxNameLen, "Name", "Shapes", "Probes", "Updated")
			fmt.Fprintf(out, "  %-*s  %6s  %6s  %s\n", maxNameLen, "----", "------", "------", "-------")
			for _, e := range entries {
				fmt.Fprintf(out, "  %-*s  %6d  %6d  %s\n",
					maxNameLen, e.Name, e.Shapes, e.Probes, e.UpdatedAt.Format("Jan 02 15:04"))
			}
			return nil
		})
	},
}

var storeRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a stored scene",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			if err := store.DeleteScene(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", args[0])
			return nil
		})
	},
}

func init() {
	storePutCmd.Flags().StringVar(&flagStoreName, "name", "", "Store under this name instead of the scene's own")

	storeCmd.AddCommand(storePutCmd)
	storeCmd.AddCommand(storeGetCmd)
	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeRmCmd)
}

// withStore opens the database, runs fn and closes it again.
func withStore(fn func(*storage.Store) error) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}
