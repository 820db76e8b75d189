// Package response defines the wire envelopes returned by the HTTP boundary.
//
// Every route wraps its payload in a small typed envelope instead of a
// generic map, so the wire contract ({data|results, message}) is preserved
// with compile-time structure. Handlers pick the envelope matching their
// route; errors always collapse to the bare Message envelope.
package response

import (
	"github.com/kart-io/content-center/pkg/utils/errors"
)

// Message is the minimal envelope carrying only a human-readable message.
// Used by DELETE and by every error response.
type Message struct {
	Msg string `json:"message"`
}

// Token is the envelope for a successful credential exchange.
type Token struct {
	Token string `json:"token"`
	Msg   string `json:"message"`
}

// Data is the envelope wrapping a single payload under the "data" key.
// Used by profile, channel list, article detail, and article list routes.
type Data struct {
	Payload interface{} `json:"data"`
	Msg     string      `json:"message"`
}

// Article is the envelope for article create/update, which historically
// returns the record under "article" rather than "data".
type Article struct {
	Msg     string      `json:"message"`
	Article interface{} `json:"article"`
}

// File is the envelope for a successful upload.
type File struct {
	Msg     string `json:"message"`
	FileURL string `json:"fileUrl"`
}

// Page is the paginated result set nested under "data" on the list route.
type Page struct {
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
	Results    interface{} `json:"results"`
	TotalCount int64       `json:"total_count"`
}

// Err builds the error envelope for an errno. The HTTP status comes from
// the errno itself; the envelope only carries the message.
func Err(e *errors.Errno) (int, *Message) {
	return e.HTTPStatus(), &Message{Msg: e.Msg}
}

// OK builds a Message envelope for a success outcome.
func OK(msg string) *Message {
	return &Message{Msg: msg}
}

// WithData wraps a payload in the Data envelope.
func WithData(payload interface{}, msg string) *Data {
	return &Data{Payload: payload, Msg: msg}
}

// WithArticle wraps an article in the Article envelope.
func WithArticle(article interface{}, msg string) *Article {
	return &Article{Article: article, Msg: msg}
}
