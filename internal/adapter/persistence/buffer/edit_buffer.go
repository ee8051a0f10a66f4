// Package buffer holds the per-owner edit state of cost items between requests.
package buffer

import (
	"sync"
	"time"

	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/usecase/interfaces"
)

type key struct {
	owner string
	item  string
}

// EditBuffer is an in-process IEditBuffer. Entries are copied in and out so
// callers never share a payments slice with the buffer.
type EditBuffer struct {
	mu      sync.Mutex
	entries map[key]entities.ItemEdit
}

var _ interfaces.IEditBuffer = (*EditBuffer)(nil)

func NewEditBuffer() *EditBuffer {
	return &EditBuffer{entries: make(map[key]entities.ItemEdit)}
}

func (b *EditBuffer) Get(ownerID, itemID string) (entities.ItemEdit, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.entries[key{ownerID, itemID}]
	if !ok {
		return entities.ItemEdit{}, false
	}
	return copyEdit(e), true
}

func (b *EditBuffer) Put(ownerID, itemID string, edit entities.ItemEdit) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[key{ownerID, itemID}] = copyEdit(edit)
}

// Update runs fn on a copy of the stored edit and commits it only when fn
// succeeds.
func (b *EditBuffer) Update(ownerID, itemID string, fn func(edit *entities.ItemEdit) error) (entities.ItemEdit, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	k := key{ownerID, itemID}
	e, ok := b.entries[k]
	if !ok {
		return entities.ItemEdit{}, false, nil
	}
	next := copyEdit(e)
	if err := fn(&next); err != nil {
		return copyEdit(e), true, err
	}
	b.entries[k] = next
	return copyEdit(next), true, nil
}

func (b *EditBuffer) Delete(ownerID, itemID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	k := key{ownerID, itemID}
	if _, ok := b.entries[k]; !ok {
		return false
	}
	delete(b.entries, k)
	return true
}

// SweepIdle drops entries untouched since before. Entries with a save in flight
// are kept.
func (b *EditBuffer) SweepIdle(before time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for k, e := range b.entries {
		if e.State == entities.EditStateSaving || !e.TouchedAt.Before(before) {
			continue
		}
		delete(b.entries, k)
		n++
	}
	return n
}

func (b *EditBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

func copyEdit(e entities.ItemEdit) entities.ItemEdit {
	e.Item = e.Item.Clone()
	return e
}
