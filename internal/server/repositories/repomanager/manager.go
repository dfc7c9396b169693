package repomanager

import (
	"context"
	"database/sql"

	"github.com/vetlig/vetlig/internal/dbx"
	"github.com/vetlig/vetlig/internal/server/repositories/users"
	"github.com/vetlig/vetlig/internal/server/repositories/vetprofiles"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	VetProfiles(db dbx.DBTX) vetprofiles.Repository
}
