package main

import (
	"fmt"
	"os"

	"github.com/jonathan/career-compass/internal/observability"
	"github.com/spf13/cobra"
)

var (
	skillsCatalogPath string
	skillsResumePath  string
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skill vocabulary or scan a resume for skills",
	Long: `Without --resume, skills prints the catalog's global skill vocabulary.
With --resume, the document is scanned for vocabulary terms and the matches
are printed as a suggested skill selection.`,
	RunE: runSkills,
}

func init() {
	skillsCmd.Flags().StringVar(&skillsCatalogPath, "catalog", "", "Path to CSV catalog (default: embedded catalog)")
	skillsCmd.Flags().StringVar(&skillsResumePath, "resume", "", "Path to resume (PDF, DOCX or plain text) to scan")
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(_ *cobra.Command, _ []string) error {
	store := newStore(skillsCatalogPath)
	printer := observability.NewPrinter(os.Stdout)

	if skillsResumePath == "" {
		vocabulary, err := store.Vocabulary()
		if err != nil {
			return err
		}
		printer.PrintSkills("SKILL VOCABULARY", vocabulary)
		return nil
	}

	matched, err := extractResumeSkills(store, skillsResumePath)
	if err != nil {
		return fmt.Errorf("resume scan failed: %w", err)
	}
	printer.PrintSkills("SKILLS DETECTED IN RESUME", matched)
	return nil
}
