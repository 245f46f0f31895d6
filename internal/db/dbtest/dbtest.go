// Package dbtest holds test doubles for the unit-of-work boundary.
package dbtest

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Transactor runs fn immediately with a nil transaction. Repository
// factories used alongside it are expected to ignore their argument.
type Transactor struct {
	Calls    int
	BeginErr error
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	t.Calls++
	if t.BeginErr != nil {
		return t.BeginErr
	}
	return fn(nil)
}
