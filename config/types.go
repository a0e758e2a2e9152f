package config

// Config represents the complete configuration structure
type Config struct {
	Sanity  SanityConfig  `mapstructure:"sanity"`
	Safety  SafetyConfig  `mapstructure:"safety"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SanityConfig holds Sanity API connection details
type SanityConfig struct {
	ProjectID   string `mapstructure:"project_id"`
	Dataset     string `mapstructure:"dataset"`
	AccessToken string `mapstructure:"access_token"`
	APIVersion  string `mapstructure:"api_version"`
}

// SafetyConfig contains safety-related settings for mutations
type SafetyConfig struct {
	DryRun        bool `mapstructure:"dry_run"`
	ConfirmMutate bool `mapstructure:"confirm_mutate"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
