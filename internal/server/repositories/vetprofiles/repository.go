package vetprofiles

import (
	"context"

	"github.com/vetlig/vetlig/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID int64) (*models.VetProfile, error)
	ListVerified(ctx context.Context) ([]models.Vet, error)
}
