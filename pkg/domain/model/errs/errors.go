package errs

import (
	"errors"
)

var ErrQuotaExceeded = errors.New("open ticket quota exceeded")
var ErrTicketNotFound = errors.New("ticket not found")
var ErrTicketAlreadyClosed = errors.New("ticket already closed")
var ErrUnknownCommand = errors.New("unknown command")
