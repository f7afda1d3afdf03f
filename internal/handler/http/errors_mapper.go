package http

import (
	"errors"
	"net/http"
)

var errorStatusMap = map[error]int{
	ErrInvalidSecretToken: http.StatusUnauthorized,
	ErrInvalidUpdate:      http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
