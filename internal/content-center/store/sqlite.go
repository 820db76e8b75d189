package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/kart-io/content-center/internal/model"
	"github.com/kart-io/content-center/pkg/component/sqlite"
)

// datastore implements the Factory interface over SQLite.
type datastore struct {
	client *sqlite.Client
	locks  *keyedMutex
}

// NewFactory creates a storage factory backed by the given SQLite client
// and migrates the schema.
func NewFactory(client *sqlite.Client) (Factory, error) {
	if client == nil {
		return nil, fmt.Errorf("sqlite client cannot be nil")
	}

	ds := &datastore{
		client: client,
		locks:  newKeyedMutex(),
	}
	if err := ds.autoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return ds, nil
}

func (ds *datastore) db() *gorm.DB {
	return ds.client.DB()
}

// Articles returns the article store.
func (ds *datastore) Articles() ArticleStore {
	return newArticles(ds.db(), ds.locks)
}

// Channels returns the channel store.
func (ds *datastore) Channels() ChannelStore {
	return newChannels(ds.db())
}

// Users returns the user store.
func (ds *datastore) Users() UserStore {
	return newUsers(ds.db())
}

func (ds *datastore) autoMigrate() error {
	return ds.db().AutoMigrate(
		&model.Article{},
		&model.Channel{},
		&model.User{},
	)
}

// Close closes the factory and underlying connections.
func (ds *datastore) Close() error {
	return ds.client.Close()
}
