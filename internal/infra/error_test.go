//go:build unit

package infra_test

import (
	"testing"

	"engros-ordering/internal/infra"
	"engros-ordering/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErrClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:     "explicit kind wins",
			err:      errs.New("no rows"),
			kind:     []infra.RepositoryErrorKind{infra.KindNotFound},
			wantKind: infra.KindNotFound,
		},
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: "23505"},
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "foreign key violation",
			err:      &pgconn.PgError{Code: "23503"},
			wantKind: infra.KindForeignKeyViolated,
		},
		{
			name:     "anything else is a db failure",
			err:      errs.New("connection reset"),
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("query failed", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.wantKind))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "query failed")
		})
	}
}

func TestIsKindOnForeignError(t *testing.T) {
	assert.False(t, infra.IsKind(errs.New("plain"), infra.KindNotFound))
	assert.False(t, infra.IsKind(nil, infra.KindNotFound))
}
