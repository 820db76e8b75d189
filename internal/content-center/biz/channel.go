package biz

import (
	"context"

	"github.com/kart-io/content-center/internal/content-center/store"
	"github.com/kart-io/content-center/internal/model"
	"github.com/kart-io/content-center/pkg/utils/errors"
)

// ChannelService serves the static channel reference list.
type ChannelService struct {
	store store.Factory
}

// NewChannelService creates a new ChannelService.
func NewChannelService(store store.Factory) *ChannelService {
	return &ChannelService{store: store}
}

// List returns all channels.
func (s *ChannelService) List(ctx context.Context) ([]*model.Channel, error) {
	channels, err := s.store.Channels().List(ctx)
	if err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return channels, nil
}
