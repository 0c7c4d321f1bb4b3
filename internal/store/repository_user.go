package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

const usersTable = "users"

var userColumns = []string{"id", "email", "full_name", "role", "approver_level", "created_at"}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.ApproverLevel, &u.CreatedAt)
	return u, err
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	q := psql.Select(userColumns...).From(usersTable).Where(sq.Eq{"id": id})
	return queryOne(ctx, r.db, "userRepository.FindUserByID", q, scanUser)
}

func (r *userRepository) FindUsersByIDs(ctx context.Context, ids []int64) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	q := psql.Select(userColumns...).From(usersTable).Where(sq.Eq{"id": ids}).OrderBy("id")
	return queryMany(ctx, r.db, "userRepository.FindUsersByIDs", q, scanUser)
}

func (r *userRepository) ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	q := psql.Select(userColumns...).From(usersTable).OrderBy("full_name")
	if role != "" {
		q = q.Where(sq.Eq{"role": role})
	}
	return queryMany(ctx, r.db, "userRepository.ListUsersByRole", q, scanUser)
}
