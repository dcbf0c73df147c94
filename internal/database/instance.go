package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/send-it-later/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	installationRepo contract.InstallationRepo
	botRepo          contract.BotRepo
	oauthStateRepo   contract.OAuthStateRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		installationRepo: newInstallationRepo(db),
		botRepo:          newBotRepo(db),
		oauthStateRepo:   newOAuthStateRepo(db),
	}
}

// Installation returns the installation repository
func (i *instance) Installation() contract.InstallationRepo {
	return i.installationRepo
}

// Bot returns the bot repository
func (i *instance) Bot() contract.BotRepo {
	return i.botRepo
}

// OAuthState returns the OAuth state repository
func (i *instance) OAuthState() contract.OAuthStateRepo {
	return i.oauthStateRepo
}

// WithTransaction executes a function within a database transaction.
// Nothing fn wrote is kept unless it returns nil and the commit succeeds.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fmt.Errorf("nested transactions are not supported")
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
