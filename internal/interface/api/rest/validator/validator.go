package validator

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
)

const (
	DefaultPage = 0
	DefaultSize = 10
)

// ValidatePaging parses the page/size query parameters, falling back to
// the defaults when absent. page must be >= 0, size >= 1.
func ValidatePaging(page, size string) (int, int, error) {
	p, s := DefaultPage, DefaultSize

	if page != "" {
		v, err := strconv.Atoi(page)
		if err != nil || v < 0 {
			return 0, 0, errors.New("page must be a non-negative integer")
		}
		p = v
	}
	if size != "" {
		v, err := strconv.Atoi(size)
		if err != nil || v < 1 {
			return 0, 0, errors.New("size must be a positive integer")
		}
		s = v
	}

	return p, s, nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}
