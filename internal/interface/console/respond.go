package console

import (
	apperrors "github.com/xiebiao/bookstore-console/pkg/errors"
)

// fixed-width table layouts
const (
	bookHeaderFormat = "%-30s | %-25s | %-20s | %-10s | %-15s\n"
	bookRowFormat    = "%-30s | %-25s | %-20s | %-10.2f | %-15d\n"
	bookRule         = "-------------------------------------------------------------------------------------------------------------------------------------"

	soldBookFormat = "%-30s | %-30s | %-10s\n"
	soldBookRule   = "------------------------------------------------------------------------"

	dateLayout = "2006-01-02"
)

// respondError shows operator-correctable errors (4xxxx codes) and swallows them.
// Store and broker failures (5xxxx) and foreign errors are returned for the caller to log.
//
//	if err := uc.Commit(ctx, b); err != nil {
//	    return respondError(p, err)
//	}
func respondError(p *Prompter, err error) error {
	if !apperrors.IsAppError(err) {
		return err
	}
	appErr := apperrors.GetAppError(err)
	if appErr.Code >= apperrors.ErrCodeInternal {
		return err
	}
	p.Println(appErr.Message)
	return nil
}

// toID maps operator input to a store identifier; ids below 1 never resolve
func toID(n int) uint {
	if n < 1 {
		return 0
	}
	return uint(n)
}
