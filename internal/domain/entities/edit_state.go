package entities

import (
	"errors"
	"time"
)

var ErrSaveInProgress = errors.New("save already in progress")

// EditState is the lifecycle of a cost item held in the edit buffer.
//
//	clean --mutate--> dirty --save--> saving --ok--> clean
//	                                        \--err--> save-failed --mutate/save--> ...
//
// A failed save never reverts the buffered item; the user saves again.

type EditState string

const (
	EditStateClean      EditState = "clean"
	EditStateDirty      EditState = "dirty"
	EditStateSaving     EditState = "saving"
	EditStateSaveFailed EditState = "save-failed"
)

// ItemEdit is a cost item checked out into the owner's edit buffer.
type ItemEdit struct {
	Item      CostItem  `json:"item"`
	State     EditState `json:"state"`
	LastError string    `json:"last_error,omitempty"`
	TouchedAt time.Time `json:"touched_at"`
}

func NewItemEdit(item CostItem, state EditState, now time.Time) *ItemEdit {
	return &ItemEdit{Item: item, State: state, TouchedAt: now}
}

// Mutate applies fn to the buffered item and marks it dirty. The item is left
// untouched when fn fails.
func (e *ItemEdit) Mutate(now time.Time, fn func(item *CostItem) error) error {
	if e.State == EditStateSaving {
		return ErrSaveInProgress
	}
	next := e.Item.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	e.Item = next
	e.State = EditStateDirty
	e.TouchedAt = now
	return nil
}

func (e *ItemEdit) BeginSave(now time.Time) error {
	if e.State == EditStateSaving {
		return ErrSaveInProgress
	}
	e.State = EditStateSaving
	e.TouchedAt = now
	return nil
}

func (e *ItemEdit) CompleteSave(saved CostItem, now time.Time) {
	e.Item = saved
	e.State = EditStateClean
	e.LastError = ""
	e.TouchedAt = now
}

func (e *ItemEdit) FailSave(err error, now time.Time) {
	e.State = EditStateSaveFailed
	if err != nil {
		e.LastError = err.Error()
	}
	e.TouchedAt = now
}
