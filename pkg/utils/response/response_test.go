package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kart-io/content-center/pkg/utils/errors"
	"github.com/kart-io/content-center/pkg/utils/json"
)

func TestErrEnvelope(t *testing.T) {
	status, env := Err(errors.ErrUnauthenticated)
	assert.Equal(t, http.StatusUnauthorized, status)

	raw, err := json.Marshal(env)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"message":"Unauthorized person"}`, string(raw))
}

func TestDataEnvelopeShape(t *testing.T) {
	raw, err := json.Marshal(WithData([]string{"a", "b"}, "OK"))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"data":["a","b"],"message":"OK"}`, string(raw))
}

func TestArticleEnvelopeShape(t *testing.T) {
	raw, err := json.Marshal(WithArticle(map[string]string{"id": "1"}, "Article created successfully"))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"article":{"id":"1"},"message":"Article created successfully"}`, string(raw))
}

func TestPageEnvelopeShape(t *testing.T) {
	page := &Page{Page: 2, PerPage: 4, Results: []int{}, TotalCount: 9}
	raw, err := json.Marshal(WithData(page, "OK"))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"data":{"page":2,"per_page":4,"results":[],"total_count":9},"message":"OK"}`, string(raw))
}
