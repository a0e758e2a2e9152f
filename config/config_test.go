package config

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(cfg *Config) {},
			wantErr: false,
		},
		{
			name: "missing project ID",
			mutate: func(cfg *Config) {
				cfg.Sanity.ProjectID = ""
			},
			wantErr: true,
		},
		{
			name: "missing dataset",
			mutate: func(cfg *Config) {
				cfg.Sanity.Dataset = ""
			},
			wantErr: true,
		},
		{
			name: "invalid logging level",
			mutate: func(cfg *Config) {
				cfg.Logging.Level = "verbose"
			},
			wantErr: true,
		},
		{
			name: "invalid logging format",
			mutate: func(cfg *Config) {
				cfg.Logging.Format = "xml"
			},
			wantErr: true,
		},
		{
			name: "token is optional",
			mutate: func(cfg *Config) {
				cfg.Sanity.AccessToken = ""
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Sanity: SanityConfig{
					ProjectID:   "zp7mbokg",
					Dataset:     "production",
					AccessToken: "sk-secret",
				},
				Logging: LoggingConfig{
					Level:  "info",
					Format: "console",
				},
			}
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
