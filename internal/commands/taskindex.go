package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTaskNumberRequired indicates no task number was provided.
var ErrTaskNumberRequired = errors.New("task number required")

// ParseTaskNumber parses args[0] as a 1-based task number and validates it
// against count, the number of stored tasks.
//
// Validation rules:
//  1. No args → ErrTaskNumberRequired
//  2. Not an integer, less than 1, or greater than count → range error
//     naming the valid range with the current count
func ParseTaskNumber(args []string, count int) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskNumberRequired
	}

	arg := args[0]
	num, err := strconv.Atoi(arg)
	if err != nil || num < 1 || num > count {
		return 0, fmt.Errorf("invalid task number: %s (valid: 1-%d)", arg, count)
	}
	return num, nil
}
