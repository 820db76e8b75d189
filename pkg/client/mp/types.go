package mp

// Profile is the authenticated user's profile.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Channel is a reference list entry.
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Cover describes the cover image layout of an article.
type Cover struct {
	Type   int      `json:"type"`
	Images []string `json:"images"`
}

// Article mirrors the article wire record.
type Article struct {
	ID           string `json:"id,omitempty"`
	Title        string `json:"title,omitempty"`
	Status       *int   `json:"status,omitempty"`
	ChannelID    string `json:"channel_id,omitempty"`
	Cover        *Cover `json:"cover,omitempty"`
	Content      string `json:"content,omitempty"`
	Pubdate      string `json:"pubdate,omitempty"`
	ReadCount    int64  `json:"read_count,omitempty"`
	CommentCount int64  `json:"comment_count,omitempty"`
	LikeCount    int64  `json:"like_count,omitempty"`
	Draft        bool   `json:"draft,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// ArticlePage is one page of a filtered article listing.
type ArticlePage struct {
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	Results    []Article `json:"results"`
	TotalCount int64     `json:"total_count"`
}

// ListArticlesOptions are the filter and pagination parameters for
// ListArticles. Zero values impose no constraint.
type ListArticlesOptions struct {
	// Status filters by review state; nil is a wildcard.
	Status *int
	// ChannelID filters by channel; empty is a wildcard.
	ChannelID string
	// BeginPubdate keeps articles with pubdate >= this value.
	BeginPubdate string
	// EndPubdate keeps articles with pubdate <= this value.
	EndPubdate string
	// Page is the 1-indexed page number. Zero means page 1.
	Page int
	// PerPage is the page size. Zero means the server default.
	PerPage int
}

// envelopes

type tokenEnvelope struct {
	Token string `json:"token"`
	Msg   string `json:"message"`
}

type messageEnvelope struct {
	Msg string `json:"message"`
}

type profileEnvelope struct {
	Data Profile `json:"data"`
	Msg  string  `json:"message"`
}

type channelsEnvelope struct {
	Data []Channel `json:"data"`
	Msg  string    `json:"message"`
}

type articleEnvelope struct {
	Article Article `json:"article"`
	Msg     string  `json:"message"`
}

type articleDataEnvelope struct {
	Data Article `json:"data"`
	Msg  string  `json:"message"`
}

type pageEnvelope struct {
	Data ArticlePage `json:"data"`
	Msg  string      `json:"message"`
}

type fileEnvelope struct {
	FileURL string `json:"fileUrl"`
	Msg     string `json:"message"`
}
