package services

import (
	"context"
	"database/sql"

	"github.com/vetlig/vetlig/internal/common"
	"github.com/vetlig/vetlig/internal/server/models"
	"github.com/vetlig/vetlig/internal/server/repositories/repomanager"
)

// VetService exposes the read side of the vet directory.
type VetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewVetService(db *sql.DB, m repomanager.RepositoryManager) *VetService {
	return &VetService{db: db, repomanager: m}
}

// ListVerified returns every veterinarian whose profile has been verified,
// with the profile joined in.
func (s *VetService) ListVerified(ctx context.Context) ([]models.Vet, error) {
	vets, err := s.repomanager.VetProfiles(s.db).ListVerified(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return vets, nil
}
