package database

import (
	"fmt"
	"time"

	"github.com/diegoclair/send-it-later/internal/domain/contract"
	"github.com/diegoclair/send-it-later/internal/domain/entity"
)

type oauthStateRepo struct {
	db dbConn
}

func newOAuthStateRepo(db dbConn) contract.OAuthStateRepo {
	return &oauthStateRepo{db: db}
}

func (r *oauthStateRepo) Create(state *entity.OAuthState) error {
	result, err := r.db.Exec(
		`INSERT INTO slack_oauth_states (state, expire_at) VALUES (?, ?)`,
		state.State, state.ExpireAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to create oauth state: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	state.ID = id
	return nil
}

// Consume deletes the state and reports whether it existed and had not expired.
func (r *oauthStateRepo) Consume(state string, now time.Time) (bool, error) {
	result, err := r.db.Exec(
		`DELETE FROM slack_oauth_states WHERE state = ? AND expire_at > ?`,
		state, now.Unix(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to consume oauth state: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *oauthStateRepo) DeleteExpired(now time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM slack_oauth_states WHERE expire_at <= ?`, now.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired oauth states: %w", err)
	}

	return result.RowsAffected()
}
