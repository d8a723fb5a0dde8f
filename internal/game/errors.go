package game

import "errors"

var (
	// ErrState reports pick/release/unpick called in the wrong order.
	ErrState = errors.New("invalid game state")
	// ErrIllegalPick reports items that may not be picked right now.
	ErrIllegalPick = errors.New("cannot pick the selected items")
	// ErrIllegalRelease reports a configuration that overlaps or falls off
	// the board and therefore cannot be committed.
	ErrIllegalRelease = errors.New("cannot release items at their current configuration")
	// ErrNoItem reports a dot with nothing visible on it.
	ErrNoItem = errors.New("no item at dot")
	// ErrInconsistent signals corrupted internal state: momentos were not
	// captured at legal configurations. It should never occur.
	ErrInconsistent = errors.New("inconsistent internal state")
	// ErrUnknownItem reports a layout entry naming no item of this game.
	ErrUnknownItem = errors.New("unknown item name")
)
