package planner

import "errors"

var (
	ErrEmptyGoal       = errors.New("goal must not be empty")
	ErrPromptTooLarge  = errors.New("prompt exceeds the token budget")
	ErrUnknownFunction = errors.New("model chose a function that is not available")
)
