package database

import (
	"context"
	"testing"

	"wedding_admin/internal/adapter/persistence/memory"
	"wedding_admin/internal/infrastructure/config"
)

func TestNewRepositories_Memory(t *testing.T) {
	repos, err := NewRepositories(context.Background(), &config.Config{DataBackend: config.BackendMemory})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := repos.CostItems.(*memory.CostItemStore); !ok {
		t.Fatalf("expected memory cost item store, got %T", repos.CostItems)
	}
	if repos.Venues == nil || repos.Checkouts == nil {
		t.Fatalf("expected all repositories to be set")
	}
	if err := repos.Cleanup(); err != nil {
		t.Fatalf("unexpected cleanup err: %v", err)
	}
}

func TestNewRepositories_Unknown(t *testing.T) {
	if _, err := NewRepositories(context.Background(), &config.Config{DataBackend: "sheets"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
