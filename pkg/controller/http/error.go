package http

import (
	"errors"
	"net/http"

	"github.com/santara-lab/santara/pkg/domain/model/errs"
	"github.com/santara-lab/santara/pkg/utils/logging"
)

type unauthorizedError struct {
	err error
}

func (x *unauthorizedError) Error() string { return x.err.Error() }
func (x *unauthorizedError) Unwrap() error { return x.err }

func errUnauthorized(err error) error {
	return &unauthorizedError{err: err}
}

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.From(r.Context())

	var unauthorized *unauthorizedError
	switch {
	case errors.As(err, &unauthorized):
		logger.Warn("Unauthorized", "error", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)

	case errors.Is(err, errs.ErrTicketNotFound):
		logger.Warn("Not Found", "error", err)
		http.Error(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, errs.ErrUnknownCommand),
		errors.Is(err, errs.ErrTicketAlreadyClosed),
		errors.Is(err, errs.ErrQuotaExceeded):
		logger.Warn("Bad Request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)

	default:
		errs.Handle(r.Context(), err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
