package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/analytics"
	"github.com/jonathan/resume-builder/internal/observability"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show how complete the working resume is",
	Args:  cobra.NoArgs,
	RunE:  runProgress,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show word and entry counts",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check email and profile URLs",
	Long:  "Check email and profile URLs. Problems are advisory and never block saving.",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

var jsonOutput bool

func init() {
	for _, c := range []*cobra.Command{progressCmd, statsCmd, validateCmd} {
		c.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of a table")
	}
	rootCmd.AddCommand(progressCmd, statsCmd, validateCmd)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func runProgress(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(s *session) error {
		doc := s.store.Document()
		percent := s.store.Progress()
		sections := analytics.SectionStatus(doc)
		if jsonOutput {
			return printJSON(cmd, struct {
				Progress int                         `json:"progress"`
				Sections []analytics.SectionProgress `json:"sections"`
			}{percent, sections})
		}
		observability.NewPrinter(cmd.OutOrStdout()).PrintProgress(percent, sections)
		return nil
	})
}

func runStats(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(s *session) error {
		stats := s.store.Stats()
		if jsonOutput {
			return printJSON(cmd, stats)
		}
		observability.NewPrinter(cmd.OutOrStdout()).PrintStats(stats)
		return nil
	})
}

func runValidate(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(s *session) error {
		issues := s.store.ValidateContact()
		if jsonOutput {
			if issues == nil {
				return printJSON(cmd, []struct{}{})
			}
			return printJSON(cmd, issues)
		}
		observability.NewPrinter(cmd.OutOrStdout()).PrintIssues(issues)
		return nil
	})
}
