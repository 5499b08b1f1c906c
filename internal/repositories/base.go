package repositories

import (
	"context"
	"errors"

	pkgerrors "taproom/pkg/errors"

	"gorm.io/gorm"
)

// ErrConcurrencyConflict is returned by Save when the stored version no
// longer matches the version that was read.
var ErrConcurrencyConflict = errors.New("record was modified concurrently")

// base provides the shared GORM handle of the repositories.
type base struct {
	db *gorm.DB
}

// conn returns the GORM connection bound to ctx.
func (b base) conn(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// storeError marks err as a failure of the backing store itself.
func storeError(err error, message string) error {
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, message)
}

func conflictError(message string) error {
	return pkgerrors.Wrap(pkgerrors.CodeConflict, ErrConcurrencyConflict, message)
}
