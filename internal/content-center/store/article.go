package store

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/kart-io/content-center/internal/model"
)

// keyedMutex serializes read-modify-write cycles per article id so two
// concurrent updates cannot interleave and lose writes.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*entryLock
}

type entryLock struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*entryLock)}
}

func (k *keyedMutex) lock(key string) {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &entryLock{}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.Lock()
}

func (k *keyedMutex) unlock(key string) {
	k.mu.Lock()
	entry := k.locks[key]
	entry.refs--
	if entry.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	entry.Unlock()
}

type articles struct {
	db    *gorm.DB
	locks *keyedMutex
}

func newArticles(db *gorm.DB, locks *keyedMutex) *articles {
	return &articles{db: db, locks: locks}
}

// Create inserts a new article.
func (a *articles) Create(ctx context.Context, article *model.Article) error {
	return a.db.WithContext(ctx).Create(article).Error
}

// Update applies a partial update to the article with the given id and
// returns the merged record. The read-merge-write cycle is atomic per id.
func (a *articles) Update(ctx context.Context, id string, patch *model.ArticlePatch) (*model.Article, error) {
	a.locks.lock(id)
	defer a.locks.unlock(id)

	var article model.Article
	if err := a.db.WithContext(ctx).Where("id = ?", id).First(&article).Error; err != nil {
		return nil, err
	}

	patch.Apply(&article)
	if err := a.db.WithContext(ctx).Save(&article).Error; err != nil {
		return nil, err
	}

	return &article, nil
}

// Delete removes the article with the given id. Deleting an unknown id
// returns gorm.ErrRecordNotFound.
func (a *articles) Delete(ctx context.Context, id string) error {
	a.locks.lock(id)
	defer a.locks.unlock(id)

	result := a.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Article{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Get retrieves an article by id.
func (a *articles) Get(ctx context.Context, id string) (*model.Article, error) {
	var article model.Article
	if err := a.db.WithContext(ctx).Where("id = ?", id).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// List returns the total match count and one page of articles. Filters
// combine with AND; unset filters match everything. Results are ordered
// by insertion sequence so pagination is stable.
func (a *articles) List(ctx context.Context, query ArticleQuery) (int64, []*model.Article, error) {
	db := a.db.WithContext(ctx).Model(&model.Article{})

	if query.Status != nil {
		db = db.Where("status = ?", *query.Status)
	}
	if query.ChannelID != "" {
		db = db.Where("channel_id = ?", query.ChannelID)
	}
	if query.BeginPubdate != nil {
		db = db.Where("pubdate >= ?", query.BeginPubdate.Time)
	}
	if query.EndPubdate != nil {
		db = db.Where("pubdate <= ?", query.EndPubdate.Time)
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, nil, err
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	perPage := query.PerPage
	if perPage < 1 {
		perPage = 10
	}

	var results []*model.Article
	err := db.Order("seq ASC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&results).Error
	if err != nil {
		return 0, nil, err
	}

	return count, results, nil
}
