package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
)

var suggestSkillsCmd = &cobra.Command{
	Use:   "suggest-skills",
	Short: "Add catalog skills that fit the professional title",
	Args:  cobra.NoArgs,
	RunE:  runSuggestSkills,
}

var generateSummaryCmd = &cobra.Command{
	Use:   "generate-summary",
	Short: "Write a summary from the title, experience and skills",
	Args:  cobra.NoArgs,
	RunE:  runGenerateSummary,
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Replace the working resume with sample data",
	Args:  cobra.NoArgs,
	RunE:  runSample,
}

func init() {
	rootCmd.AddCommand(suggestSkillsCmd, generateSummaryCmd, sampleCmd)
}

func runSuggestSkills(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(s *session) error {
		added, res := s.store.SuggestSkills()
		// Nothing to add is not an error for the caller.
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		observability.NewPrinter(cmd.OutOrStdout()).PrintSkills("SUGGESTED SKILLS", added)
		return nil
	})
}

func runGenerateSummary(cmd *cobra.Command, _ []string) error {
	return withSession(cmd, func(s *session) error {
		if err := report(cmd, s.store.GenerateSummary()); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", s.store.Document().Summary)
		return nil
	})
}

func runSample(cmd *cobra.Command, _ []string) error {
	ok, err := confirm(cmd, "Replace the working resume with sample data?")
	if err != nil || !ok {
		return err
	}
	return withSession(cmd, func(s *session) error {
		return report(cmd, s.store.AutoFillSample())
	})
}
