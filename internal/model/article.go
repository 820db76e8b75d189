package model

// ArticleStatus is the review state of an article. Numeric in the wire format.
type ArticleStatus int

// Article statuses.
const (
	// StatusDraft marks an article saved but not submitted for review.
	StatusDraft ArticleStatus = 0

	// StatusPending marks an article waiting for review. Default on create.
	StatusPending ArticleStatus = 1

	// StatusApproved marks a published article.
	StatusApproved ArticleStatus = 2
)

// Cover describes the cover image layout of an article.
// Type is the expected image count and must be 0, 1, or 3.
type Cover struct {
	Type   int      `json:"type"`
	Images []string `json:"images"`
}

// Matches reports whether the image list length equals the declared type.
func (c Cover) Matches() bool {
	return len(c.Images) == c.Type
}

// ValidType reports whether the cover type is one of the allowed layouts.
func (c Cover) ValidType() bool {
	return c.Type == 0 || c.Type == 1 || c.Type == 3
}

// Article represents an article record.
//
// Seq is the storage-assigned insertion sequence and never leaves the
// process; ID is the opaque public identifier, immutable after creation.
// List results are ordered by Seq so pagination is stable and deterministic.
type Article struct {
	Seq          uint64        `json:"-" gorm:"primaryKey;autoIncrement"`
	ID           string        `json:"id" gorm:"size:26;not null;uniqueIndex:uk_article_id"`
	Title        string        `json:"title" gorm:"size:255;not null"`
	Status       ArticleStatus `json:"status" gorm:"default:1;index:idx_article_status"`
	ChannelID    string        `json:"channel_id" gorm:"size:64;index:idx_article_channel"`
	Cover        Cover         `json:"cover" gorm:"type:text;serializer:json"`
	Content      string        `json:"content" gorm:"type:text"`
	Pubdate      Time          `json:"pubdate" gorm:"index:idx_article_pubdate"`
	ReadCount    int64         `json:"read_count" gorm:"default:0"`
	CommentCount int64         `json:"comment_count" gorm:"default:0"`
	LikeCount    int64         `json:"like_count" gorm:"default:0"`
	Draft        bool          `json:"draft"`
	CreatedAt    Time          `json:"created_at"`
}

// TableName returns the table name for GORM.
func (a *Article) TableName() string {
	return "articles"
}

// ArticlePatch carries a partial article update. Nil fields are left
// untouched on merge; set fields win last-write-wins per field.
type ArticlePatch struct {
	Title        *string        `json:"title"`
	Status       *ArticleStatus `json:"status"`
	ChannelID    *string        `json:"channel_id"`
	Cover        *Cover         `json:"cover"`
	Content      *string        `json:"content"`
	Pubdate      *Time          `json:"pubdate"`
	ReadCount    *int64         `json:"read_count"`
	CommentCount *int64         `json:"comment_count"`
	LikeCount    *int64         `json:"like_count"`
	Draft        *bool          `json:"draft"`
}

// Apply merges the set fields of the patch onto the article.
func (p *ArticlePatch) Apply(a *Article) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.ChannelID != nil {
		a.ChannelID = *p.ChannelID
	}
	if p.Cover != nil {
		a.Cover = *p.Cover
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Pubdate != nil {
		a.Pubdate = *p.Pubdate
	}
	if p.ReadCount != nil {
		a.ReadCount = *p.ReadCount
	}
	if p.CommentCount != nil {
		a.CommentCount = *p.CommentCount
	}
	if p.LikeCount != nil {
		a.LikeCount = *p.LikeCount
	}
	if p.Draft != nil {
		a.Draft = *p.Draft
	}
}
