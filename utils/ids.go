package utils

import (
	"errors"
	"strconv"
)

var ErrInvalidID = errors.New("id must be a positive number")

// ParseID validates a user-entered identifier. Records carry ids typed on
// a form, so they arrive as strings and must be positive integers.
func ParseID(s string) (uint, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, ErrInvalidID
	}
	return uint(n), nil
}
