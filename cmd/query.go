package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/spf13/cobra"

	"github.com/lnordberg/sanity-go/sanity"
)

var (
	queryVars   []string
	queryFilter string
	rawOutput   bool
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <groq>",
	Short: "Run a GROQ query against the dataset",
	Long: `Run a GROQ query against the configured dataset and print the result.

Variables referenced in the query as $name are supplied with repeated
--var flags. Values are parsed as JSON, so strings need quoting:

  sanity-cli query "*[_type=='site' && id==\$siteId][0]" --var siteId=1
  sanity-cli query "*[_type==\$type]" --var 'type="post"'

An optional --filter expression is evaluated locally against each
document of the result array, e.g. --filter 'views > 100'.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringArrayVar(&queryVars, "var", nil, "query variable as name=value (value is JSON)")
	queryCmd.Flags().StringVar(&queryFilter, "filter", "", "filter expression applied to each result document")
	queryCmd.Flags().BoolVar(&rawOutput, "raw", false, "print the raw response body instead of the result array")
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	variables, err := parseVariables(queryVars)
	if err != nil {
		return err
	}

	resp, err := client.Fetch(ctx, sanity.NewQuery(args[0], variables))
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if !resp.IsSuccess() {
		logger.Error().Int("status", resp.StatusCode).Msg("Query rejected by API")
		return fmt.Errorf("query returned %s: %s", resp.Status, string(resp.Body))
	}

	if rawOutput {
		fmt.Println(string(resp.Body))
		return nil
	}

	var result sanity.QueryResult
	if err := resp.Decode(&result); err != nil {
		return fmt.Errorf("failed to parse query response: %w", err)
	}

	logger.Debug().Int64("ms", result.MS).Msg("Query executed")

	output := result.Result
	if queryFilter != "" {
		output, err = filterResult(result.Result, queryFilter)
		if err != nil {
			return err
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(json.RawMessage(output))
}

// parseVariables turns repeated name=value flags into a variable map.
// Values are decoded as JSON; bare words fall back to plain strings so
// --var type=post works without shell-quoted JSON.
func parseVariables(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	variables := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, raw, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid variable %q, expected name=value", pair)
		}

		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		variables[name] = value
	}

	return variables, nil
}

// filterResult evaluates the expression against each document of the
// result array and keeps the matches. Non-array results are an error
// since there is nothing to iterate.
func filterResult(raw json.RawMessage, expression string) (json.RawMessage, error) {
	var docs []map[string]any
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("--filter requires an array result: %w", err)
	}

	program, err := expr.Compile(expression, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	matched := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		keep, err := expr.Run(program, doc)
		if err != nil {
			logger.Warn().Err(err).Msg("Filter evaluation failed for document, skipping")
			continue
		}
		if keep.(bool) {
			matched = append(matched, doc)
		}
	}

	logger.Debug().
		Int("total", len(docs)).
		Int("matched", len(matched)).
		Msg("Applied result filter")

	return json.Marshal(matched)
}
