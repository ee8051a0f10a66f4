package database

import (
	"context"
	"fmt"
	"log"

	"wedding_admin/internal/adapter/persistence/memory"
	"wedding_admin/internal/adapter/persistence/repository"
	"wedding_admin/internal/infrastructure/config"
	"wedding_admin/internal/usecase/interfaces"
)

// Repositories is the set of stores selected by DATA_BACKEND.
type Repositories struct {
	CostItems interfaces.ICostItemRepository
	Venues    interfaces.IVenueRepository
	Checkouts interfaces.ICheckoutRepository
	Cleanup   func() error
}

func NewRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.DataBackend {
	case config.BackendDynamoDB:
		ddb, err := ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create dynamodb client: %w", err)
		}
		log.Printf("[ledger][backend] dynamodb cost_items=%s venues=%s checkouts=%s",
			cfg.CostItemsTable, cfg.VenuesTable, cfg.CheckoutsTable)
		return &Repositories{
			CostItems: repository.NewCostItemDynamoRepository(ddb, cfg.CostItemsTable),
			Venues:    repository.NewVenueDynamoRepository(ddb, cfg.VenuesTable),
			Checkouts: repository.NewCheckoutDynamoRepository(ddb, cfg.CheckoutsTable),
			Cleanup:   func() error { return nil },
		}, nil

	case config.BackendFirestore:
		fs, err := ConnectFirestore(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create firestore client: %w", err)
		}
		log.Printf("[ledger][backend] firestore project=%s", cfg.FirestoreProjectID)
		return &Repositories{
			CostItems: repository.NewCostItemFirestoreRepository(fs, cfg.CostItemsTable),
			Venues:    repository.NewVenueFirestoreRepository(fs, cfg.VenuesTable),
			Checkouts: repository.NewCheckoutFirestoreRepository(fs, cfg.CheckoutsTable),
			Cleanup:   fs.Close,
		}, nil

	case config.BackendMemory:
		log.Printf("[ledger][backend] memory")
		return &Repositories{
			CostItems: memory.NewCostItemStore(),
			Venues:    memory.NewVenueStore(),
			Checkouts: memory.NewCheckoutStore(),
			Cleanup:   func() error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("unsupported data backend: %s", cfg.DataBackend)
	}
}
