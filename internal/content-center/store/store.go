package store

import (
	"context"

	"github.com/kart-io/content-center/internal/model"
)

// Factory defines the factory interface for creating stores.
type Factory interface {
	Articles() ArticleStore
	Channels() ChannelStore
	Users() UserStore
	Close() error
}

// ArticleQuery is the filter and pagination input for listing articles.
// Nil or zero-valued filter fields match everything; set filters combine
// with AND. Page is 1-indexed.
type ArticleQuery struct {
	Status       *model.ArticleStatus
	ChannelID    string
	BeginPubdate *model.Time
	EndPubdate   *model.Time
	Page         int
	PerPage      int
}

// ArticleStore defines the article storage interface.
type ArticleStore interface {
	Create(ctx context.Context, article *model.Article) error
	Update(ctx context.Context, id string, patch *model.ArticlePatch) (*model.Article, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*model.Article, error)
	List(ctx context.Context, query ArticleQuery) (int64, []*model.Article, error)
}

// ChannelStore defines the channel storage interface.
type ChannelStore interface {
	List(ctx context.Context) ([]*model.Channel, error)
	Save(ctx context.Context, channels []*model.Channel) error
}

// UserStore defines the user storage interface.
type UserStore interface {
	Get(ctx context.Context, id string) (*model.User, error)
	Save(ctx context.Context, user *model.User) error
}
