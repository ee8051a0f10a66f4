package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	BackendDynamoDB  = "dynamodb"
	BackendFirestore = "firestore"
	BackendMemory    = "memory"
)

type Config struct {
	// HTTP Server
	Port string

	// Backend selection
	DataBackend string

	// DynamoDB
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	CostItemsTable     string
	VenuesTable        string
	CheckoutsTable     string

	// Firestore
	FirestoreProjectID    string
	FirestoreEmulatorHost string

	// Auth
	JWTSecret string

	// Edit buffer
	EditBufferTTL       time.Duration
	EditBufferSweepSpec string

	// Mercado Pago
	MercadoPagoAccessToken string
	MercadoPagoPayerEmail  string
	PaymentGatewayMock     bool
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DataBackend: strings.ToLower(getEnv("DATA_BACKEND", BackendDynamoDB)),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   getEnv("DYNAMODB_ENDPOINT", ""),
		CostItemsTable:     getEnv("COST_ITEMS_TABLE", "cost_items"),
		VenuesTable:        getEnv("VENUES_TABLE", "venues"),
		CheckoutsTable:     getEnv("CHECKOUTS_TABLE", "checkouts"),

		FirestoreProjectID:    getEnv("FIRESTORE_PROJECT_ID", ""),
		FirestoreEmulatorHost: getEnv("FIRESTORE_EMULATOR_HOST", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		EditBufferTTL:       getEnvDuration("EDIT_BUFFER_TTL", 2*time.Hour),
		EditBufferSweepSpec: getEnv("EDIT_BUFFER_SWEEP_SPEC", "@every 10m"),

		MercadoPagoAccessToken: getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
		MercadoPagoPayerEmail:  getEnv("MERCADOPAGO_PAYER_EMAIL", ""),
		PaymentGatewayMock:     getEnvBool("PAYMENT_GATEWAY_MOCK") || getEnvBool("MERCADOPAGO_MOCK"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	validBackends := []string{BackendDynamoDB, BackendFirestore, BackendMemory}
	if !slices.Contains(validBackends, c.DataBackend) {
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	if c.DataBackend == BackendDynamoDB {
		if c.AWSRegion == "" {
			errs = append(errs, "AWS region is required when using dynamodb backend")
		}
		if c.CostItemsTable == "" || c.VenuesTable == "" || c.CheckoutsTable == "" {
			errs = append(errs, "table names cannot be empty when using dynamodb backend")
		}
	}

	if c.DataBackend == BackendFirestore && c.FirestoreProjectID == "" {
		errs = append(errs, "FIRESTORE_PROJECT_ID is required when using firestore backend")
	}

	if c.JWTSecret == "" {
		errs = append(errs, "JWT_SECRET is required")
	}

	if c.EditBufferTTL < time.Minute {
		errs = append(errs, fmt.Sprintf("invalid edit buffer ttl %v: must be at least 1 minute", c.EditBufferTTL))
	}
	if _, err := cron.ParseStandard(c.EditBufferSweepSpec); err != nil {
		errs = append(errs, fmt.Sprintf("invalid edit buffer sweep spec '%s': %v", c.EditBufferSweepSpec, err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
