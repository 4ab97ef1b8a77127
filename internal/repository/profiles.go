package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/skyway-app/skyway/internal/domain"
)

// The three one-to-one profile tables claim disjoint users: a user_id may
// appear in at most one of them.
var profileTables = []string{"administrators", "airline_companies", "customers"}

// ensureProfileFree fails if userID already owns a profile in any table
// other than self. Runs inside the caller's transaction so the check and
// the insert are atomic.
func ensureProfileFree(ctx context.Context, tx pgx.Tx, userID int64, self string) error {
	for _, table := range profileTables {
		if table == self {
			continue
		}
		var exists bool
		query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE user_id=$1)`, table)
		if err := tx.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
			return translateErr(err)
		}
		if exists {
			return fmt.Errorf("%w: user %d already owns a profile in %s", domain.ErrConstraintViolation, userID, table)
		}
	}
	return nil
}
