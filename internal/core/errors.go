package core

import "errors"

var (
	ErrInvalidMaxTokens = errors.New("max tokens must be positive")
	ErrBlankIdentifier  = errors.New("identifier must not be blank")
	ErrFunctionNotFound = errors.New("function not found")
)
