package interfaces

import (
	"time"
	"wedding_admin/internal/domain/entities"
)

//go:generate mockgen -source=edit_buffer_interface.go -destination=mocks/mock_edit_buffer_interface.go -package=mock_interfaces

// IEditBuffer holds the cost items an owner is editing, keyed by owner and item id.
//
// Get returns a copy. Update runs fn with exclusive access to the stored edit and
// returns a copy of the result; found is false when nothing is buffered.

type IEditBuffer interface {
	Get(ownerID, itemID string) (edit entities.ItemEdit, found bool)
	Put(ownerID, itemID string, edit entities.ItemEdit)
	Update(ownerID, itemID string, fn func(edit *entities.ItemEdit) error) (updated entities.ItemEdit, found bool, err error)
	Delete(ownerID, itemID string) bool
	SweepIdle(before time.Time) int
}
