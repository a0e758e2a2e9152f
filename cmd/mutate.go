package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lnordberg/sanity-go/sanity"
)

var (
	mutationFile    string
	returnIDs       bool
	returnDocuments bool
	visibility      string
)

// mutateCmd represents the mutate command
var mutateCmd = &cobra.Command{
	Use:   "mutate",
	Short: "Submit a mutation batch from a JSON file",
	Long: `Submit a batch of mutations to the configured dataset.

The file given with --file contains either a JSON array of mutations
or a {"mutations": [...]} object, each mutation keyed by its kind:

  [
    {"createOrReplace": {"_id": "author-1", "_type": "author", "name": "Random"}},
    {"delete": {"id": "author-2"}}
  ]

The batch is applied atomically by the API. With --dry-run (or
safety.dry_run in the config) the batch is validated but not
committed.`,
	RunE: runMutate,
}

func init() {
	rootCmd.AddCommand(mutateCmd)

	mutateCmd.Flags().StringVarP(&mutationFile, "file", "f", "", "JSON file containing the mutation batch (required)")
	mutateCmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "validate the batch without committing it")
	mutateCmd.Flags().BoolVarP(&noConfirm, "yes", "y", false, "skip the confirmation prompt")
	mutateCmd.Flags().BoolVar(&returnIDs, "return-ids", false, "return the IDs of affected documents")
	mutateCmd.Flags().BoolVar(&returnDocuments, "return-documents", false, "return the documents after mutation")
	mutateCmd.Flags().StringVar(&visibility, "visibility", "", "transaction visibility: sync, async or deferred")

	mutateCmd.MarkFlagRequired("file")
}

func runMutate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	mutations, err := loadMutations(mutationFile)
	if err != nil {
		return err
	}
	if len(mutations) == 0 {
		return fmt.Errorf("no mutations found in %s", mutationFile)
	}

	logger.Info().
		Int("count", len(mutations)).
		Str("dataset", cfg.Sanity.Dataset).
		Bool("dry_run", cfg.Safety.DryRun).
		Msg("Submitting mutation batch")

	if !cfg.Safety.DryRun && cfg.Safety.ConfirmMutate && !noConfirm {
		if !confirm(fmt.Sprintf("Apply %d mutation(s) to dataset %q?", len(mutations), cfg.Sanity.Dataset)) {
			logger.Info().Msg("Aborted")
			return nil
		}
	}

	resp, err := client.Mutate(ctx, mutations, sanity.MutateParams{
		ReturnIDs:       returnIDs,
		ReturnDocuments: returnDocuments,
		DryRun:          cfg.Safety.DryRun,
		Visibility:      visibility,
	})
	if err != nil {
		return fmt.Errorf("mutate failed: %w", err)
	}

	if !resp.IsSuccess() {
		logger.Error().Int("status", resp.StatusCode).Msg("Mutation batch rejected by API")
		return fmt.Errorf("mutate returned %s: %s", resp.Status, string(resp.Body))
	}

	var result sanity.MutateResult
	if err := resp.Decode(&result); err != nil {
		// Still a success; show what we got
		fmt.Println(string(resp.Body))
		return nil
	}

	logger.Info().
		Str("transaction_id", result.TransactionID).
		Int("results", len(result.Results)).
		Msg("Mutation batch applied")

	for _, outcome := range result.Results {
		logger.Info().
			Str("id", outcome.ID).
			Str("operation", outcome.Operation).
			Msg("Document affected")
	}

	return nil
}

// loadMutations reads a mutation batch file. Both a bare array and the
// {"mutations": [...]} envelope are accepted.
func loadMutations(path string) (sanity.Mutations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mutation file: %w", err)
	}

	var envelope struct {
		Mutations []map[string]json.RawMessage `json:"mutations"`
	}

	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, fmt.Errorf("failed to parse mutation file: %w", err)
		}
		entries = envelope.Mutations
	}

	mutations := make(sanity.Mutations, 0, len(entries))
	for i, entry := range entries {
		if len(entry) != 1 {
			return nil, fmt.Errorf("mutation %d must have exactly one kind, got %d", i, len(entry))
		}

		for tag, doc := range entry {
			mutation, err := sanity.NewMutation(tag, doc)
			if err != nil {
				return nil, fmt.Errorf("mutation %d: %w", i, err)
			}
			mutations = append(mutations, mutation)
		}
	}

	return mutations, nil
}

// confirm prompts the user for a yes/no answer
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
