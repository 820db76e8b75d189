package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeCode(t *testing.T) {
	tests := []struct {
		name     string
		service  int
		category int
		sequence int
		want     int
	}{
		{
			name:     "common request error",
			service:  ServiceCommon,
			category: CategoryRequest,
			sequence: 1,
			want:     1001,
		},
		{
			name:     "auth request error",
			service:  ServiceAuth,
			category: CategoryRequest,
			sequence: 1,
			want:     101001,
		},
		{
			name:     "content resource error",
			service:  ServiceContent,
			category: CategoryResource,
			sequence: 1,
			want:     204001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MakeCode(tt.service, tt.category, tt.sequence))

			service, category, sequence := ParseCode(tt.want)
			assert.Equal(t, tt.service, service)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.sequence, sequence)
		})
	}
}

func TestErrnoHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrInvalidCredentials.HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, ErrUnauthenticated.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, ErrArticleNotFound.HTTPStatus())
	assert.Equal(t, http.StatusGatewayTimeout, ErrRequestTimeout.HTTPStatus())
}

func TestErrnoIs(t *testing.T) {
	err := ErrArticleNotFound.WithMessage("article abc not found")
	assert.True(t, stderrors.Is(err, ErrArticleNotFound))
	assert.False(t, stderrors.Is(err, ErrNotFound))
}

func TestErrnoWithCause(t *testing.T) {
	cause := fmt.Errorf("disk gone")
	err := ErrDatabase.WithCause(cause)

	assert.ErrorIs(t, err, ErrDatabase)
	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.Contains(t, err.Error(), "disk gone")

	// WithCause must not mutate the registered errno.
	assert.Nil(t, stderrors.Unwrap(ErrDatabase))
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))
	assert.Same(t, ErrArticleNotFound, FromError(ErrArticleNotFound))

	wrapped := FromError(fmt.Errorf("boom"))
	assert.ErrorIs(t, wrapped, ErrInternal)
	assert.Equal(t, http.StatusInternalServerError, wrapped.HTTPStatus())
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(ErrUnauthenticated.Code)
	assert.True(t, ok)
	assert.Same(t, ErrUnauthenticated, e)

	_, ok = Lookup(9999999)
	assert.False(t, ok)
}
