package db

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"painmap/internal/store"
)

// Both backends must satisfy the store's storage contract.
func TestBackendsImplementStorage(t *testing.T) {
	var _ store.Storage = (*Repository)(nil)
	var _ store.Storage = (*MongoRepository)(nil)
}

func TestRepository_Integration(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" || testing.Short() {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	conn, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, Migrate(ctx, conn))

	repo := NewRepository(conn)
	key := store.Key("integration-test")
	require.NoError(t, repo.Delete(ctx, key))

	_, found, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Put(ctx, key, []byte(`[{"bodyPartId":"front-head"}]`)))
	require.NoError(t, repo.Put(ctx, key, []byte(`[]`)))
	value, found, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, string(value))

	require.NoError(t, repo.Delete(ctx, key))
	_, found, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMongoRepository_Integration(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" || testing.Short() {
		t.Skip("TEST_MONGO_URI not set")
	}
	ctx := context.Background()
	client, err := ConnectMongo(ctx, uri)
	require.NoError(t, err)
	defer client.Disconnect(ctx)

	repo := NewMongoRepository(client, "painmap_test")
	key := store.Key("integration-test")
	require.NoError(t, repo.Put(ctx, key, []byte(`[]`)))
	value, found, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, string(value))
	require.NoError(t, repo.Delete(ctx, key))
}
