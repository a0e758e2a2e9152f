package sanity

// DefaultAPIVersion is the API version used when none is configured.
const DefaultAPIVersion = "2021-06-07"

// Config describes how to reach one Sanity project/dataset pair.
// It is a plain value: build it once with NewConfig and hand it to
// NewClient. The zero value for AccessToken and APIVersion means
// "unset" (no Authorization header, default API version).
type Config struct {
	ProjectID   string
	Dataset     string
	AccessToken string
	APIVersion  string
}

// ConfigOption configures optional Config fields.
type ConfigOption func(*Config)

// WithAccessToken sets the API token used for the Authorization header.
// Tokens are created in the Sanity project management console.
func WithAccessToken(token string) ConfigOption {
	return func(c *Config) {
		c.AccessToken = token
	}
}

// WithAPIVersion pins the client to a specific API version,
// e.g. "2021-10-21". When unset, DefaultAPIVersion is used.
func WithAPIVersion(version string) ConfigOption {
	return func(c *Config) {
		c.APIVersion = version
	}
}

// NewConfig creates a Config for the given project and dataset.
// Optional fields are supplied through ConfigOption values; fields not
// set stay empty. NewConfig performs no validation — NewClient rejects
// configs with an empty project ID or dataset.
func NewConfig(projectID, dataset string, opts ...ConfigOption) Config {
	cfg := Config{
		ProjectID: projectID,
		Dataset:   dataset,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
