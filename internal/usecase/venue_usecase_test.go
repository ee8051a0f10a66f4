package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"wedding_admin/internal/domain/entities"
	mock_interfaces "wedding_admin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestVenueUseCase_Upsert(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewVenueUseCase(nil)
		ctx := context.Background()
		if _, err := uc.Upsert(ctx, "owner-1", "", "Sitio", 1); !errors.Is(err, ErrInvalidVenueID) {
			t.Fatalf("expected ErrInvalidVenueID, got %v", err)
		}
		if _, err := uc.Upsert(ctx, "owner-1", "v1", " ", 1); !errors.Is(err, ErrInvalidVenueName) {
			t.Fatalf("expected ErrInvalidVenueName, got %v", err)
		}
		if _, err := uc.Upsert(ctx, "owner-1", "v1", "Sitio", -1); !errors.Is(err, ErrInvalidVenuePrice) {
			t.Fatalf("expected ErrInvalidVenuePrice, got %v", err)
		}
	})

	t.Run("keeps chosen flag and creation time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVenueRepository(ctrl)
		uc := NewVenueUseCase(repo)

		created := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "owner-1", "v1").Return(entities.Venue{ID: "v1", Chosen: true, CreatedAt: created}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v entities.Venue) (entities.Venue, error) {
			if !v.Chosen || !v.CreatedAt.Equal(created) || v.OwnerID != "owner-1" || v.BasePrice != 25000 {
				t.Fatalf("unexpected venue written: %+v", v)
			}
			return v, nil
		})

		if _, err := uc.Upsert(context.Background(), "owner-1", "v1", "Quinta", 25000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestVenueUseCase_Choose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIVenueRepository(ctrl)
	uc := NewVenueUseCase(repo)

	repo.EXPECT().SetChosen(gomock.Any(), "owner-1", "v1").Return(entities.Venue{ID: "v1", Chosen: true}, nil)
	repo.EXPECT().SetChosen(gomock.Any(), "owner-1", "v9").Return(entities.Venue{}, nil)

	v, err := uc.Choose(context.Background(), "owner-1", "v1")
	if err != nil || !v.Chosen {
		t.Fatalf("unexpected choose result: %+v err=%v", v, err)
	}
	if _, err := uc.Choose(context.Background(), "owner-1", "v9"); !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}
}

func TestVenueUseCase_GetChosen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIVenueRepository(ctrl)
	uc := NewVenueUseCase(repo)

	repo.EXPECT().GetChosen(gomock.Any(), "owner-1").Return(entities.Venue{}, nil)
	repo.EXPECT().GetChosen(gomock.Any(), "owner-2").Return(entities.Venue{}, errors.New("down"))

	if _, err := uc.GetChosen(context.Background(), "owner-1"); !errors.Is(err, ErrNoChosenVenue) {
		t.Fatalf("expected ErrNoChosenVenue, got %v", err)
	}
	if _, err := uc.GetChosen(context.Background(), "owner-2"); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
