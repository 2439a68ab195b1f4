package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
)

var saveCmd = &cobra.Command{
	Use:   "save [title]",
	Short: "Save a snapshot of the working resume",
	Long: "Save a snapshot of the working resume. Without a title the snapshot is named " +
		"after the person. Only the ten most recent snapshots are kept.",
	RunE: runSave,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved snapshots, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var loadCmd = &cobra.Command{
	Use:   "load <id>",
	Short: "Replace the working resume with a saved snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

var duplicateCmd = &cobra.Command{
	Use:   "duplicate <id>",
	Short: "Copy a saved snapshot under a new id",
	Args:  cobra.ExactArgs(1),
	RunE:  runDuplicate,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the working resume",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

var deleteCurrentCmd = &cobra.Command{
	Use:   "delete-current",
	Short: "Clear the working resume and remove its stored draft",
	Args:  cobra.NoArgs,
	RunE:  runDeleteCurrent,
}

func init() {
	rootCmd.AddCommand(saveCmd, listCmd, loadCmd, duplicateCmd, deleteCmd, resetCmd, deleteCurrentCmd)
}

// confirm asks before a destructive action. It prints "Cancelled" and returns
// false when the user declines.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	ok, err := settings.confirmer.Confirm(prompt)
	if err != nil {
		return false, err
	}
	if !ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
	}
	return ok, nil
}

func runSave(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		return report(cmd, s.store.Save(cmd.Context(), strings.Join(args, " ")))
	})
}

func runList(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(s *session) error {
		observability.NewPrinter(cmd.OutOrStdout()).PrintSavedList(s.store.Saved())
		return nil
	})
}

func runLoad(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		return report(cmd, s.store.Load(cmd.Context(), args[0]))
	})
}

func runDuplicate(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		return report(cmd, s.store.Duplicate(cmd.Context(), args[0]))
	})
}

func runDelete(cmd *cobra.Command, args []string) error {
	ok, err := confirm(cmd, "Are you sure you want to delete this resume?")
	if err != nil || !ok {
		return err
	}
	return withSession(cmd, func(s *session) error {
		return report(cmd, s.store.DeleteSaved(cmd.Context(), args[0]))
	})
}

func runReset(cmd *cobra.Command, _ []string) error {
	ok, err := confirm(cmd, "Are you sure you want to reset the form? All unsaved data will be lost.")
	if err != nil || !ok {
		return err
	}
	return withSession(cmd, func(s *session) error {
		return report(cmd, s.store.Reset(cmd.Context()))
	})
}

func runDeleteCurrent(cmd *cobra.Command, _ []string) error {
	ok, err := confirm(cmd, "Are you sure you want to delete the current resume?")
	if err != nil || !ok {
		return err
	}
	return withSession(cmd, func(s *session) error {
		return report(cmd, s.store.DeleteCurrent(cmd.Context()))
	})
}
