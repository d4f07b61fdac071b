package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/api2md"
	"github.com/fwojciec/api2md/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure ConversionService implements api2md.ConversionRecorder at compile time.
var _ api2md.ConversionRecorder = (*sqlite.ConversionService)(nil)

// mustOpenDB returns an in-memory database, closed on test cleanup.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func TestConversionService_RecordConversion(t *testing.T) {
	t.Parallel()

	t.Run("assigns id and timestamp and round-trips fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewConversionService(mustOpenDB(t))
		ctx := context.Background()

		rec := &api2md.ConversionRecord{
			SourceURL:   "https://example.com/docs/pets",
			FilePath:    "output/GET-api-pets.md",
			Method:      api2md.MethodGet,
			Endpoint:    "api-pets",
			ContentHash: sqlite.HashContent("# Pets"),
		}

		require.NoError(t, svc.RecordConversion(ctx, rec))
		assert.NotEmpty(t, rec.ID)
		assert.False(t, rec.FetchedAt.IsZero())

		found, err := svc.FindConversionsBySourceURL(ctx, "https://example.com/docs/pets")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, rec.ID, found[0].ID)
		assert.Equal(t, "output/GET-api-pets.md", found[0].FilePath)
		assert.Equal(t, api2md.MethodGet, found[0].Method)
		assert.Equal(t, "api-pets", found[0].Endpoint)
		assert.Equal(t, rec.ContentHash, found[0].ContentHash)
	})

	t.Run("requires a source URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewConversionService(mustOpenDB(t))

		err := svc.RecordConversion(context.Background(), &api2md.ConversionRecord{
			FilePath: "output/GET-api-pets.md",
		})

		require.Error(t, err)
		assert.Equal(t, api2md.EINVALID, api2md.ErrorCode(err))
	})

	t.Run("requires a file path", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewConversionService(mustOpenDB(t))

		err := svc.RecordConversion(context.Background(), &api2md.ConversionRecord{
			SourceURL: "https://example.com/docs/pets",
		})

		require.Error(t, err)
		assert.Equal(t, api2md.EINVALID, api2md.ErrorCode(err))
	})
}

func TestConversionService_FindConversionsBySourceURL(t *testing.T) {
	t.Parallel()

	t.Run("unknown URL yields no records", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewConversionService(mustOpenDB(t))

		found, err := svc.FindConversionsBySourceURL(context.Background(), "https://example.com/none")

		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestHashContent(t *testing.T) {
	t.Parallel()

	t.Run("is stable for identical content", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, sqlite.HashContent("# Pets"), sqlite.HashContent("# Pets"))
	})

	t.Run("differs when content changes", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, sqlite.HashContent("# Pets"), sqlite.HashContent("# Pets v2"))
	})
}
