package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"services": map[string]any{
			"userUrl":        "",
			"listingUrl":     "",
			"transactionUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"media": map[string]any{
			"bucketUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SERVICES_USERURL", want: "services.userUrl"},
		{envKey: "SERVICES_TRANSACTIONURL", want: "services.transactionUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "MEDIA_BUCKETURL", want: "media.bucketUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestValidate_RequiresBackendURLsAndSecret(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Services = ServicesConfig{
			UserURL:        "http://localhost:8001",
			ListingURL:     "http://localhost:8002",
			TransactionURL: "http://localhost:8003",
		}
		cfg.SecretKey.Access = "secret"

		return cfg
	}

	if err := valid().validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing user url", mutate: func(cfg *Config) { cfg.Services.UserURL = "" }},
		{name: "missing listing url", mutate: func(cfg *Config) { cfg.Services.ListingURL = " " }},
		{name: "missing transaction url", mutate: func(cfg *Config) { cfg.Services.TransactionURL = "" }},
		{name: "missing secret", mutate: func(cfg *Config) { cfg.SecretKey.Access = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.validate(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}
