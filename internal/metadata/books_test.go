package metadata

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/shelfmatch/internal/metadata/mocks"
	"github.com/vmunix/shelfmatch/pkg/googlebooks"
	"github.com/vmunix/shelfmatch/pkg/openlibrary"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func duneVolumes() []googlebooks.Volume {
	return []googlebooks.Volume{{ID: "B1", VolumeInfo: googlebooks.VolumeInfo{Title: "Dune", Authors: []string{"Frank Herbert"}}}}
}

func TestBookService_SearchByAuthor_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	volumes := mocks.NewMockVolumeSearcher(ctrl)
	volumes.EXPECT().
		SearchByAuthor(gomock.Any(), "Frank Herbert", 10).
		Return(duneVolumes(), nil).
		Times(1)

	svc := NewBookService(volumes, nil, NewCache(setupTestDB(t)), time.Hour, testLogger())
	ctx := context.Background()

	first, err := svc.SearchByAuthor(ctx, "Frank Herbert", 10)
	require.NoError(t, err)
	second, err := svc.SearchByAuthor(ctx, "Frank Herbert", 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Dune", second[0].VolumeInfo.Title)
}

func TestBookService_CacheKeyIgnoresCaseAndSpace(t *testing.T) {
	ctrl := gomock.NewController(t)
	volumes := mocks.NewMockVolumeSearcher(ctrl)
	volumes.EXPECT().SearchBySubject(gomock.Any(), gomock.Any(), 10).Return(duneVolumes(), nil).Times(1)

	svc := NewBookService(volumes, nil, NewCache(setupTestDB(t)), 0, testLogger())
	ctx := context.Background()

	_, err := svc.SearchBySubject(ctx, "Science Fiction", 10)
	require.NoError(t, err)
	_, err = svc.SearchBySubject(ctx, " science fiction ", 10)
	require.NoError(t, err)
}

func TestBookService_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	volumes := mocks.NewMockVolumeSearcher(ctrl)
	volumes.EXPECT().Search(gomock.Any(), "dune", 5).Return(duneVolumes(), nil).Times(2)

	svc := NewBookService(volumes, nil, nil, time.Hour, nil)
	ctx := context.Background()

	for range 2 {
		vols, err := svc.Search(ctx, "dune", 5)
		require.NoError(t, err)
		assert.Len(t, vols, 1)
	}
}

func TestBookService_ErrorsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	volumes := mocks.NewMockVolumeSearcher(ctrl)
	gomock.InOrder(
		volumes.EXPECT().Search(gomock.Any(), "dune", 5).Return(nil, googlebooks.ErrRateLimited),
		volumes.EXPECT().Search(gomock.Any(), "dune", 5).Return(duneVolumes(), nil),
	)

	svc := NewBookService(volumes, nil, NewCache(setupTestDB(t)), time.Hour, testLogger())
	ctx := context.Background()

	_, err := svc.Search(ctx, "dune", 5)
	assert.ErrorIs(t, err, googlebooks.ErrRateLimited)

	vols, err := svc.Search(ctx, "dune", 5)
	require.NoError(t, err)
	assert.Len(t, vols, 1)
}

func TestBookService_CorruptCacheEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	volumes := mocks.NewMockVolumeSearcher(ctrl)
	volumes.EXPECT().Search(gomock.Any(), "dune", 5).Return(duneVolumes(), nil).Times(1)

	cache := NewCache(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, cacheKey(keyPrefixSearch, "dune", 5), []byte("not json"), time.Hour))

	svc := NewBookService(volumes, nil, cache, time.Hour, testLogger())
	vols, err := svc.Search(ctx, "dune", 5)
	require.NoError(t, err)
	assert.Len(t, vols, 1)

	// the fresh result replaced the corrupt entry
	data, ok := cache.Get(ctx, cacheKey(keyPrefixSearch, "dune", 5))
	require.True(t, ok)
	assert.Contains(t, string(data), "Dune")
}

func TestBookService_InvalidateSearches(t *testing.T) {
	ctrl := gomock.NewController(t)
	volumes := mocks.NewMockVolumeSearcher(ctrl)
	volumes.EXPECT().Search(gomock.Any(), "dune", 5).Return(duneVolumes(), nil).Times(2)

	cache := NewCache(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "unrelated", []byte("{}"), time.Hour))

	svc := NewBookService(volumes, nil, cache, time.Hour, testLogger())
	_, err := svc.Search(ctx, "dune", 5)
	require.NoError(t, err)

	n, err := svc.InvalidateSearches(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = svc.Search(ctx, "dune", 5)
	require.NoError(t, err)
	_, ok := cache.Get(ctx, "unrelated")
	assert.True(t, ok)
}

func TestBookService_LookupSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	works := mocks.NewMockWorkSearcher(ctrl)
	works.EXPECT().
		Search(gomock.Any(), "The Final Empire", "Brandon Sanderson", 5).
		Return([]openlibrary.Doc{
			// matches but lists no series
			{Key: "/works/OL1W", Title: "The Final Empire", AuthorName: []string{"Brandon Sanderson"}},
			{Key: "/works/OL2W", Title: "The Final Empire", AuthorName: []string{"Brandon Sanderson"}, Series: []string{"Mistborn #1"}},
			{Key: "/works/OL3W", Title: "Warbreaker", AuthorName: []string{"Brandon Sanderson"}, Series: []string{"Warbreaker"}},
		}, nil)

	svc := NewBookService(nil, works, nil, time.Hour, testLogger())

	m, err := svc.LookupSeries(context.Background(), "The Final Empire", "Brandon Sanderson")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "Mistborn", m.Series)
	require.NotNil(t, m.Index)
	assert.InDelta(t, 1.0, *m.Index, 1e-9)
	assert.Equal(t, "/works/OL2W", m.WorkKey)
	// exact title (1.0) and author substring (0.95)
	assert.InDelta(t, 0.98, m.Confidence, 1e-9)
}

func TestBookService_LookupSeries_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	works := mocks.NewMockWorkSearcher(ctrl)
	works.EXPECT().
		Search(gomock.Any(), "Elantris", "", 5).
		Return([]openlibrary.Doc{
			{Key: "/works/OL3W", Title: "Warbreaker", Series: []string{"Warbreaker"}},
		}, nil)

	svc := NewBookService(nil, works, nil, time.Hour, testLogger())

	m, err := svc.LookupSeries(context.Background(), "Elantris", "")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestBookService_LookupSeries_Errors(t *testing.T) {
	svc := NewBookService(nil, nil, nil, time.Hour, testLogger())
	_, err := svc.LookupSeries(context.Background(), "Dune", "Frank Herbert")
	assert.ErrorIs(t, err, ErrSeriesLookupDisabled)

	ctrl := gomock.NewController(t)
	works := mocks.NewMockWorkSearcher(ctrl)
	boom := errors.New("boom")
	works.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	svc = NewBookService(nil, works, nil, time.Hour, testLogger())
	_, err = svc.LookupSeries(context.Background(), "Dune", "Frank Herbert")
	assert.ErrorIs(t, err, boom)
}
