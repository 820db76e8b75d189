package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqliteopts "github.com/kart-io/content-center/pkg/options/sqlite"
)

func TestNewInMemory(t *testing.T) {
	opts := sqliteopts.NewOptions()
	opts.Path = "file:client_test?mode=memory&cache=shared"

	client, err := New(opts)
	require.NoError(t, err)
	defer client.Close()

	assert.NotNil(t, client.DB())
	assert.NoError(t, client.Ping(context.Background()))
}

func TestNewRejectsNilOptions(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := sqliteopts.NewOptions()
	opts.Path = ""

	_, err := New(opts)
	assert.Error(t, err)
}
