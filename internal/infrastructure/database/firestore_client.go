package database

import (
	"context"
	"log"

	"wedding_admin/internal/infrastructure/config"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// ConnectFirestore creates a Firestore client for FIRESTORE_PROJECT_ID. When
// FIRESTORE_EMULATOR_HOST is set the client talks to the emulator without
// credentials.
func ConnectFirestore(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	opts := []option.ClientOption{option.WithUserAgent("wedding-admin")}
	if cfg.FirestoreEmulatorHost != "" {
		log.Printf("[ledger][firestore] using emulator host=%s", cfg.FirestoreEmulatorHost)
		opts = append(opts, option.WithoutAuthentication())
	}
	return firestore.NewClient(ctx, cfg.FirestoreProjectID, opts...)
}
