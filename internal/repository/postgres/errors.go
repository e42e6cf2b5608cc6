package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/kingrain94/shop-rag-api/internal/domain"
)

// sqliteConstraint is the primary SQLITE_CONSTRAINT result code.
const sqliteConstraint = 19

// sqliteCoder is implemented by the pure-Go sqlite driver errors.
type sqliteCoder interface {
	Code() int
}

// translateError maps driver errors onto the domain taxonomy. The original
// error stays in the chain.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return fmt.Errorf("%w: %w", domain.ErrIntegrityViolation, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 23: integrity constraint violation
		// class 22: data exception, e.g. "expected 768 dimensions, not 3"
		if len(pgErr.Code) >= 2 && (pgErr.Code[:2] == "23" || pgErr.Code[:2] == "22") {
			return fmt.Errorf("%w: %w", domain.ErrIntegrityViolation, err)
		}
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	var liteErr sqliteCoder
	if errors.As(err, &liteErr) && liteErr.Code()&0xff == sqliteConstraint {
		return fmt.Errorf("%w: %w", domain.ErrIntegrityViolation, err)
	}

	if errors.Is(err, errMissingTenant) {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
}
