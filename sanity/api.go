package sanity

import (
	"context"
	"io"
)

// API defines the interface for Sanity operations
type API interface {
	// Fetch runs a GROQ query against the dataset
	Fetch(ctx context.Context, query Query) (*Response, error)

	// Mutate submits an ordered mutation batch atomically
	Mutate(ctx context.Context, mutations Mutations, params MutateParams) (*Response, error)

	// UploadAsset uploads one image file by path
	UploadAsset(ctx context.Context, path string) (*Response, error)

	// UploadAssetReader uploads asset bytes from a reader
	UploadAssetReader(ctx context.Context, r io.Reader, contentType string) (*Response, error)
}

var _ API = (*Client)(nil)
