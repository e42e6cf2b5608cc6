package service

import (
	"errors"
	"fmt"

	"github.com/kingrain94/shop-rag-api/internal/domain"
)

var (
	errMissingShopToken = fmt.Errorf("%w: missing shop token", domain.ErrUnauthenticated)
	errInvalidShopToken = fmt.Errorf("%w: invalid shop token", domain.ErrUnauthenticated)

	ErrOffboardingDisabled = fmt.Errorf("%w: offboarding queue is not configured", domain.ErrExternalService)
)

// IsMissingToken reports whether a Resolve failure was caused by an empty
// credential rather than an unknown one.
func IsMissingToken(err error) bool {
	return errors.Is(err, errMissingShopToken)
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}
