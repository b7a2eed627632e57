package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/breakout"
	"github.com/vovakirdan/brickbreak/internal/storage"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Manage saved block layouts",
	Long: `Save, list, show and delete block layouts in the database.

A layout file has one row per line. '-' places a block and any other
character leaves the cell empty, so every line is a row. Trailing blank
lines are ignored.

Examples:
  brickbreak layouts import castle ./castle.txt
  brickbreak layouts list
  brickbreak layouts show castle
  brickbreak layouts delete castle`,
}

var layoutsImportCmd = &cobra.Command{
	Use:   "import <name> <file>",
	Short: "Save a layout file under a name",
	Args:  cobra.ExactArgs(2),
	RunE:  runLayoutsImport,
}

var layoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts",
	Args:  cobra.NoArgs,
	RunE:  runLayoutsList,
}

var layoutsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutsShow,
}

var layoutsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutsDelete,
}

func init() {
	layoutsCmd.AddCommand(layoutsImportCmd)
	layoutsCmd.AddCommand(layoutsListCmd)
	layoutsCmd.AddCommand(layoutsShowCmd)
	layoutsCmd.AddCommand(layoutsDeleteCmd)
}

// requireStore opens the database or fails; layout commands need it.
func requireStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}
	return store, nil
}

func runLayoutsImport(cmd *cobra.Command, args []string) error {
	name, path := args[0], args[1]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open layout file: %w", err)
	}
	defer f.Close()

	layout, err := breakout.ParseLayout(f)
	if err != nil {
		return err
	}
	if layout.Count() == 0 {
		return fmt.Errorf("layout file %s has no blocks", path)
	}

	store, err := requireStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveLayout(name, layout, layout.Count()); err != nil {
		return err
	}

	rows, cols := layout.Size()
	logger.Info("layout saved", "name", name, "rows", rows, "cols", cols, "blocks", layout.Count())
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d blocks)\n", name, layout.Count())
	return nil
}

func runLayoutsList(cmd *cobra.Command, _ []string) error {
	store, err := requireStore()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.ListLayouts()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No saved layouts. Import one with 'brickbreak layouts import'.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tROWS\tBLOCKS\tUPDATED")
	for _, e := range entries {
		updated := "-"
		if !e.UpdatedAt.IsZero() {
			updated = e.UpdatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", e.Name, len(e.Rows), e.Blocks, updated)
	}
	return w.Flush()
}

func runLayoutsShow(cmd *cobra.Command, args []string) error {
	store, err := requireStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rows, err := store.Layout(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), breakout.Layout(rows).String())
	return nil
}

func runLayoutsDelete(cmd *cobra.Command, args []string) error {
	store, err := requireStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteLayout(args[0]); err != nil {
		if errors.Is(err, storage.ErrLayoutNotFound) {
			return fmt.Errorf("no layout named %q", args[0])
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}
