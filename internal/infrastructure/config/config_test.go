package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Port:                "8080",
		DataBackend:         BackendMemory,
		JWTSecret:           "secret",
		EditBufferTTL:       2 * time.Hour,
		EditBufferSweepSpec: "@every 10m",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errorString string
	}{
		{name: "valid memory backend", mutate: func(*Config) {}},
		{
			name: "valid dynamodb backend",
			mutate: func(c *Config) {
				c.DataBackend = BackendDynamoDB
				c.AWSRegion = "us-east-1"
				c.CostItemsTable, c.VenuesTable, c.CheckoutsTable = "cost_items", "venues", "checkouts"
			},
		},
		{
			name:        "invalid port",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "port out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "unknown backend",
			mutate:      func(c *Config) { c.DataBackend = "postgres" },
			wantErr:     true,
			errorString: "invalid data backend 'postgres'",
		},
		{
			name:        "firestore without project",
			mutate:      func(c *Config) { c.DataBackend = BackendFirestore },
			wantErr:     true,
			errorString: "FIRESTORE_PROJECT_ID is required",
		},
		{
			name:        "missing jwt secret",
			mutate:      func(c *Config) { c.JWTSecret = "" },
			wantErr:     true,
			errorString: "JWT_SECRET is required",
		},
		{
			name:        "bad sweep spec",
			mutate:      func(c *Config) { c.EditBufferSweepSpec = "every ten minutes" },
			wantErr:     true,
			errorString: "invalid edit buffer sweep spec",
		},
		{
			name:        "ttl too small",
			mutate:      func(c *Config) { c.EditBufferTTL = time.Second },
			wantErr:     true,
			errorString: "invalid edit buffer ttl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Fatalf("Validate() err = %q, want it to contain %q", err.Error(), tt.errorString)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATA_BACKEND", "COST_ITEMS_TABLE", "EDIT_BUFFER_TTL", "EDIT_BUFFER_SWEEP_SPEC", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DataBackend != BackendDynamoDB {
		t.Errorf("DataBackend = %q, want dynamodb", cfg.DataBackend)
	}
	if cfg.CostItemsTable != "cost_items" {
		t.Errorf("CostItemsTable = %q", cfg.CostItemsTable)
	}
	if cfg.EditBufferTTL != 2*time.Hour {
		t.Errorf("EditBufferTTL = %v", cfg.EditBufferTTL)
	}
	if cfg.PaymentGatewayMock {
		t.Errorf("PaymentGatewayMock should default to false")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DATA_BACKEND", "Memory")
	t.Setenv("EDIT_BUFFER_TTL", "30m")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "yes")

	cfg := Load()
	if cfg.DataBackend != BackendMemory {
		t.Errorf("DataBackend = %q, want memory", cfg.DataBackend)
	}
	if cfg.EditBufferTTL != 30*time.Minute {
		t.Errorf("EditBufferTTL = %v, want 30m", cfg.EditBufferTTL)
	}
	if !cfg.PaymentGatewayMock {
		t.Errorf("PaymentGatewayMock should be enabled")
	}
}
