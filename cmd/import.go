package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all local data with a JSON export from the web app",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	d, err := sess.store.ImportJSON(f)
	if err != nil {
		return err
	}
	fmt.Printf("  Imported %d weeks and %d months\n", len(d.Weeks), len(d.Months))
	return nil
}
