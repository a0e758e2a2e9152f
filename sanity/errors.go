package sanity

import "errors"

// Common errors returned by the Sanity client.
var (
	// ErrMissingProjectID is returned when the config has an empty project ID.
	ErrMissingProjectID = errors.New("sanity project ID is required")

	// ErrMissingDataset is returned when the config has an empty dataset.
	ErrMissingDataset = errors.New("sanity dataset is required")

	// ErrEmptyMutation is returned when a zero-value Mutation is serialized.
	ErrEmptyMutation = errors.New("mutation has no kind")

	// ErrUnknownMutation is returned when NewMutation is given a tag that is
	// not one of create, createOrReplace, createIfNotExists, delete or patch.
	ErrUnknownMutation = errors.New("unknown mutation tag")
)
