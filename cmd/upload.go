package cmd

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxUploadConcurrency limits parallel asset uploads
const maxUploadConcurrency = 4

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload image assets to the dataset",
	Long: `Upload one or more image files to the dataset's asset store.

Files are uploaded concurrently; each upload reads the whole file and
blocks until the API answers. A file that cannot be read fails that
upload before any network traffic.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(maxUploadConcurrency)

	var mu sync.Mutex
	uploaded := make(map[string]string, len(args))

	for _, path := range args {
		g.Go(func() error {
			resp, err := client.UploadAsset(ctx, path)
			if err != nil {
				return fmt.Errorf("failed to upload %s: %w", path, err)
			}

			if !resp.IsSuccess() {
				return fmt.Errorf("upload of %s returned %s: %s", path, resp.Status, string(resp.Body))
			}

			var result struct {
				Document struct {
					ID  string `json:"_id"`
					URL string `json:"url"`
				} `json:"document"`
			}
			assetID := ""
			if err := resp.Decode(&result); err == nil {
				assetID = result.Document.ID
			}

			mu.Lock()
			uploaded[path] = assetID
			mu.Unlock()

			logger.Info().
				Str("file", path).
				Str("asset_id", assetID).
				Msg("Uploaded asset")

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info().Int("count", len(uploaded)).Msg("All assets uploaded")
	return nil
}
