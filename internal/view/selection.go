// Package view models the facilities page: the active category selection,
// the category controls, the derived facility list and the call-to-action
// buttons. It has no UI framework dependency; hosts dispatch events into it.
package view

import "residence-facilities/internal/domain"

// Selection is the active category id.
type Selection string

// NewSelection returns the initial selection, "all".
func NewSelection() Selection {
	return Selection(domain.CategoryAll)
}

// Event is a user interaction that may change the selection.
type Event interface {
	isEvent()
}

// SelectCategory is raised when a category control is activated.
type SelectCategory struct {
	ID string
}

func (SelectCategory) isEvent() {}

// Transition computes the selection that follows ev. Any category id is
// accepted, including ids no control offers.
func Transition(state Selection, ev Event) Selection {
	switch e := ev.(type) {
	case SelectCategory:
		return Selection(e.ID)
	default:
		return state
	}
}
