// Package repomanager hands out repositories bound to a database handle.
// Passing a dbx.DBTX lets services run several repository calls inside one
// transaction when they need to.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/coinkeeper/internal/dbx"
	"github.com/dmitrijs2005/coinkeeper/internal/server/repositories/transactions"
	"github.com/dmitrijs2005/coinkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Transactions(db dbx.DBTX) transactions.Repository
}
