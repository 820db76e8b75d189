package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kart-io/content-center/internal/model"
)

type channels struct {
	db *gorm.DB
}

func newChannels(db *gorm.DB) *channels {
	return &channels{db}
}

// List returns all channels in seed order.
func (c *channels) List(ctx context.Context) ([]*model.Channel, error) {
	var list []*model.Channel
	if err := c.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Save upserts the seed channel list.
func (c *channels) Save(ctx context.Context, list []*model.Channel) error {
	if len(list) == 0 {
		return nil
	}
	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(list).Error
}
