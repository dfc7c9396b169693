package vetprofiles

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vetlig/vetlig/internal/dbx"
	"github.com/vetlig/vetlig/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts an empty, unverified profile for the given vet user.
func (r *PostgresRepository) Create(ctx context.Context, userID int64) (*models.VetProfile, error) {

	query :=
		`INSERT INTO vet_profiles (user_id)
		 VALUES ($1)
		 RETURNING id
		 `

	profile := &models.VetProfile{UserID: userID}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&profile.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profile, nil
}

// ListVerified returns every vet user with a verified profile, joining
// users and vet_profiles in one query.
func (r *PostgresRepository) ListVerified(ctx context.Context) ([]models.Vet, error) {

	query :=
		`SELECT u.id, u.email, u.full_name, u.phone_number,
		        p.id, p.qualifications, p.vet_council_reg_number, p.is_verified
		 FROM users u
		 JOIN vet_profiles p ON p.user_id = u.id
		 WHERE u.user_type = 'vet' AND p.is_verified = TRUE
		 ORDER BY u.id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var vets []models.Vet
	for rows.Next() {
		var v models.Vet
		var regNumber sql.NullString
		err := rows.Scan(
			&v.User.ID, &v.User.Email, &v.User.FullName, &v.User.PhoneNumber,
			&v.Profile.ID, &v.Profile.Qualifications, &regNumber, &v.Profile.IsVerified)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		v.User.UserType = models.UserTypeVet
		v.Profile.UserID = v.User.ID
		v.Profile.VetCouncilRegNumber = regNumber.String
		vets = append(vets, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return vets, nil
}
