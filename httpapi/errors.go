package httpapi

import (
	"errors"
	"net/http"

	"github.com/bracketforge/bracketforge/adminauth"
	"github.com/bracketforge/bracketforge/storedb"
	"github.com/bracketforge/bracketforge/tourney"
)

// statusFor maps an error surfaced by the engine or the store to the HTTP
// status a handler should answer with. Unmapped errors become 500.
func statusFor(err error) int {
	var engineErr *tourney.EngineError
	if errors.As(err, &engineErr) {
		switch engineErr.Kind {
		case tourney.ErrTooFewPlayers, tourney.ErrGroupTooSmall, tourney.ErrTooFewGroups,
			tourney.ErrAdvanceTooLarge, tourney.ErrAdvanceTooSmall, tourney.ErrScoreArityMismatch,
			tourney.ErrTieNotPermitted:
			return http.StatusBadRequest
		case tourney.ErrUnknownMatch:
			return http.StatusNotFound
		case tourney.ErrMatchNotReady:
			return http.StatusConflict
		case tourney.ErrBadMatchID:
			return http.StatusInternalServerError
		}
	}

	switch {
	case errors.Is(err, storedb.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, adminauth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
