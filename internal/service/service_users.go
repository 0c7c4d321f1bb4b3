package service

import (
	"context"
	"slices"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

type userDirectoryService struct {
	users store.UserRepository

	logger *logger.Logger
}

func NewUserDirectoryService(users store.UserRepository, logger *logger.Logger) UserDirectoryService {
	return &userDirectoryService{users: users, logger: logger}
}

// ListUsers returns all users, or those holding role when it is set.
func (s *userDirectoryService) ListUsers(ctx context.Context, principal models.Principal, role models.Role) ([]models.User, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	users, err := s.users.ListUsersByRole(ctx, role)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("requested_role", string(role)).Msg("listing users failed")
		return nil, translate(err)
	}
	return emptyIfNil(users), nil
}

// userResolver turns audit actor ids into display references.
type userResolver struct {
	users store.UserRepository
}

// resolve looks up every non-zero id once. Unknown ids are left out of the
// result.
func (r userResolver) resolve(ctx context.Context, ids ...int64) (map[int64]*models.UserRef, error) {
	wanted := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id != 0 {
			wanted = append(wanted, id)
		}
	}
	slices.Sort(wanted)
	wanted = slices.Compact(wanted)

	refs := make(map[int64]*models.UserRef, len(wanted))
	if len(wanted) == 0 {
		return refs, nil
	}

	users, err := r.users.FindUsersByIDs(ctx, wanted)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		refs[u.ID] = u.Ref()
	}
	return refs, nil
}

func deref(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
