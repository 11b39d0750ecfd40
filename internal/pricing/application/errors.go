package application

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid pricing input")
	ErrInvalidOptionType    = errors.New("invalid option type")
	ErrInvalidPayoffStyle   = errors.New("invalid payoff style")
	ErrInvalidExerciseStyle = errors.New("invalid exercise style")
	ErrNonFinitePrice       = errors.New("lattice produced a non-finite price")
)
