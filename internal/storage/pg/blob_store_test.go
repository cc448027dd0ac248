package pg

import (
	"context"
	"flag"
	"os"
	"testing"

	"github.com/DjordjeVuckovic/translation-review/internal/storage"
	pkgtesting "github.com/DjordjeVuckovic/translation-review/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

var (
	testCtx   context.Context
	testPool  *ConnectionPool
	testStore *BlobStore
)

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.DefaultPGConfig())
	if err != nil {
		panic(err)
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		panic(err)
	}

	testStore, err = NewBlobStore(testCtx, testPool)
	if err != nil {
		panic(err)
	}

	code := m.Run()
	testPool.Close()
	_ = testcontainers.TerminateContainer(pg.Container)
	os.Exit(code)
}

func truncateBlobs(t *testing.T) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE blobs")
	require.NoError(t, err)
}

func TestBlobStore_UploadOverwrites(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	truncateBlobs(t)
	defer truncateBlobs(t)

	require.NoError(t, testStore.Upload(testCtx, storage.DefaultContainer, storage.DefaultObjectKey, []byte(`[{"id":"a"}]`)))
	require.NoError(t, testStore.Upload(testCtx, storage.DefaultContainer, storage.DefaultObjectKey, []byte(`[{"id":"b"}]`)))

	data, err := testStore.Download(testCtx, storage.DefaultContainer, storage.DefaultObjectKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"b"}]`, string(data))

	var rows int
	err = testPool.GetConn().QueryRow(testCtx, "SELECT count(*) FROM blobs").Scan(&rows)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)
}

func TestBlobStore_MissingObject(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	truncateBlobs(t)

	_, err := testStore.Download(testCtx, storage.DefaultContainer, "missing.json")

	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestBlobStore_Healthy(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	assert.True(t, testStore.Healthy(testCtx))
}
