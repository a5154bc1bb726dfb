package game

import (
	"errors"
	"fmt"
)

var (
	ErrGameOver              = errors.New("game is over")
	ErrWrongPhase            = errors.New("wrong phase")
	ErrNotYourTurn           = errors.New("not your turn")
	ErrUnknownPlayer         = errors.New("unknown player")
	ErrNoCaptain             = errors.New("no captain committed to this action")
	ErrCaptainsFull          = errors.New("all captain slots are filled")
	ErrIneligible            = errors.New("power forbids this action")
	ErrPendingDraw           = errors.New("a chart draw is waiting for a selection")
	ErrInsufficientDoubloons = errors.New("not enough doubloons")
	ErrInventory             = errors.New("not enough ships in inventory")
	ErrIllegalTarget         = errors.New("illegal target")
	ErrIllegalMove           = errors.New("illegal movement")
	ErrNoShips               = errors.New("required ship not present")
	ErrInfluence             = errors.New("not enough influence")
	ErrSelection             = errors.New("invalid chart selection")
	ErrObjective             = errors.New("chart objective not met")
	ErrNoToken               = errors.New("player does not hold the wind token")
)

// RuleError is a rejected move. It is an expected outcome: nothing was
// changed and the caller may try again.
type RuleError struct {
	Action string
	Reason string
	Err    error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("cannot %s: %s", e.Action, e.Reason)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

func reject(action string, err error, format string, args ...any) *RuleError {
	return &RuleError{Action: action, Reason: fmt.Sprintf(format, args...), Err: err}
}
