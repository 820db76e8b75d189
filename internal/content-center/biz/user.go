package biz

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/kart-io/content-center/internal/content-center/store"
	"github.com/kart-io/content-center/internal/model"
	"github.com/kart-io/content-center/pkg/utils/errors"
)

// UserService serves the provisioned user profile.
type UserService struct {
	store store.Factory

	// profileID is the id of the user the profile endpoint serves,
	// recorded when the seed data is loaded.
	profileID string
}

// NewUserService creates a new UserService. profileID identifies the
// seeded user whose profile the service exposes.
func NewUserService(store store.Factory, profileID string) *UserService {
	return &UserService{store: store, profileID: profileID}
}

// Profile returns the provisioned user's profile.
func (s *UserService) Profile(ctx context.Context) (*model.User, error) {
	user, err := s.store.Users().Get(ctx, s.profileID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return user, nil
}
