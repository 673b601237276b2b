package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/resume"
	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/spf13/cobra"
)

var (
	analyzeConfigPath  string
	analyzeCatalogPath string
	analyzeProfilePath string
	analyzeResumePath  string
	analyzeSkills      string
	analyzeInterests   string
	analyzeMathScore   int
	analyzeCodeScore   int
	analyzePersonality string
	analyzeTopN        int
	analyzeVerbose     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Rank career paths for a user profile",
	Long: `Analyze scores every catalog career against the user profile and prints the
top matches with salary band, demand trend and missing skills.

The profile comes from flags, or from a JSON file via --profile. A resume
given with --resume is scanned for known skills, which are merged into the
selection.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeCatalogPath, "catalog", "", "Path to CSV catalog (default: embedded catalog)")
	analyzeCmd.Flags().StringVar(&analyzeProfilePath, "profile", "", "Path to user profile JSON file")
	analyzeCmd.Flags().StringVar(&analyzeResumePath, "resume", "", "Path to resume (PDF, DOCX or plain text) to pre-fill skills")
	analyzeCmd.Flags().StringVar(&analyzeSkills, "skills", "", "Comma-separated selected skills")
	analyzeCmd.Flags().StringVar(&analyzeInterests, "interests", "", "Comma-separated interests")
	analyzeCmd.Flags().IntVar(&analyzeMathScore, "math", 75, "Mathematics score (0-100)")
	analyzeCmd.Flags().IntVar(&analyzeCodeScore, "code", 70, "Programming score (0-100)")
	analyzeCmd.Flags().StringVar(&analyzePersonality, "personality", "Ambivert/Any", "Personality (Introvert, Extrovert, Ambivert/Any)")
	analyzeCmd.Flags().IntVar(&analyzeTopN, "top", 0, "Number of matches to show (default 3)")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print score breakdowns")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	catalogPath, topN, verbose := analyzeCatalogPath, analyzeTopN, analyzeVerbose
	if analyzeConfigPath != "" {
		cfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if catalogPath == "" {
			catalogPath = cfg.Catalog
		}
		if topN == 0 {
			topN = cfg.TopN
		}
		verbose = verbose || cfg.Verbose
	}

	store := newStore(catalogPath)
	jobs, err := store.Jobs()
	if err != nil {
		return err
	}

	user, err := buildUserProfile()
	if err != nil {
		return err
	}

	if analyzeResumePath != "" {
		extracted, err := extractResumeSkills(store, analyzeResumePath)
		if err != nil {
			// Unreadable resume is recoverable: keep whatever skills were
			// given explicitly and tell the user why the scan was skipped.
			fmt.Fprintf(os.Stderr, "Warning: %v (continuing with manually selected skills)\n", err)
		} else {
			user.SelectedSkills = mergeSkills(user.SelectedSkills, extracted)
		}
	}

	if err := user.Validate(); err != nil {
		return fmt.Errorf("invalid user profile: %w", err)
	}
	user.Personality, _ = types.ParsePersonality(string(user.Personality))

	results, err := matching.Rank(jobs, user, topN)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintMatchResults(results, verbose)
	return nil
}

func newStore(catalogPath string) *catalog.Store {
	if catalogPath != "" {
		return catalog.NewFileStore(catalogPath)
	}
	return catalog.NewDefaultStore()
}

// buildUserProfile assembles the profile from --profile JSON (validated
// against the embedded schema) or from individual flags.
func buildUserProfile() (*types.UserProfile, error) {
	if analyzeProfilePath == "" {
		return &types.UserProfile{
			SelectedSkills:    catalog.SplitTokens(analyzeSkills),
			SelectedInterests: catalog.SplitTokens(analyzeInterests),
			MathScore:         analyzeMathScore,
			CodeScore:         analyzeCodeScore,
			Personality:       types.Personality(analyzePersonality),
		}, nil
	}

	data, err := os.ReadFile(analyzeProfilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	if err := schemas.ValidateUserProfile(data); err != nil {
		return nil, err
	}

	var user types.UserProfile
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &user, nil
}

func extractResumeSkills(store *catalog.Store, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	text, err := resume.ExtractText(path, data)
	if err != nil {
		return nil, err
	}

	vocabulary, err := store.Vocabulary()
	if err != nil {
		return nil, err
	}
	return resume.MatchSkills(text, vocabulary), nil
}

// mergeSkills appends extracted skills to the manual selection, deduplicating
// while preserving order.
func mergeSkills(manual, extracted []string) []string {
	seen := make(map[string]bool, len(manual)+len(extracted))
	merged := make([]string, 0, len(manual)+len(extracted))
	for _, skill := range append(append([]string{}, manual...), extracted...) {
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		merged = append(merged, skill)
	}
	return merged
}
