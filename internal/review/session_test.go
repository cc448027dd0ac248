package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/translation-review/internal/annotation"
	"github.com/DjordjeVuckovic/translation-review/internal/apperr"
	"github.com/DjordjeVuckovic/translation-review/internal/dataset"
	"github.com/DjordjeVuckovic/translation-review/internal/domain"
	"github.com/DjordjeVuckovic/translation-review/internal/export"
	"github.com/DjordjeVuckovic/translation-review/internal/snapshot"
	"github.com/DjordjeVuckovic/translation-review/internal/storage"
	"github.com/DjordjeVuckovic/translation-review/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/translation-review/internal/storage/local"
	"github.com/DjordjeVuckovic/translation-review/internal/syncer"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func testDataset() *dataset.Store {
	return dataset.New("cells", []domain.Sample{
		{
			ID:          "17cbcbbd",
			EnglishText: "Golgi Apparatus: As proteins leave the endoplasmic reticulum...",
			TargetGrade: "5th",
			MatchedStandards: []domain.MatchedStandard{
				{StandardCode: "MS-LS1-2"},
				{StandardCode: "MS-LS1-3"},
				{StandardCode: "6-8.LS1.A"},
			},
		},
		{ID: "a0", TargetGrade: "6th"},
		{ID: "b1", TargetGrade: "7th", MatchedStandards: []domain.MatchedStandard{{StandardCode: "MS-PS1-1"}}},
	})
}

type failingStore struct {
	storage.BlobStore
}

func (failingStore) Upload(context.Context, string, string, []byte) error {
	return errors.New("network unreachable")
}

type fixture struct {
	session *Session
	kv      *local.MemoryKV
	local   *local.Store
	blobs   storage.BlobStore
}

func newFixture(t *testing.T, blobs storage.BlobStore, kv *local.MemoryKV, cfg syncer.Config) fixture {
	t.Helper()
	if kv == nil {
		kv = local.NewMemoryKV()
	}
	store := local.NewStore(kv)
	s := NewSession(testDataset(), store, syncer.New(blobs, cfg), WithClock(func() time.Time { return fixedNow }))
	t.Cleanup(s.Close)
	return fixture{session: s, kv: kv, local: store, blobs: blobs}
}

func slowSync() syncer.Config {
	return syncer.Config{DebounceWindow: time.Hour, StatusWindow: 10 * time.Millisecond}
}

func TestSession_GolgiScenario(t *testing.T) {
	f := newFixture(t, in_mem.NewBlobStore(), nil, slowSync())
	f.session.Start(context.Background())

	v, err := f.session.RateTranslation("17cbcbbd", domain.RatingBest)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPartial, v.Status)
	assert.Equal(t, "Partial", v.Badge.Label)
	require.NotNil(t, v.Annotations)
	assert.Len(t, v.Annotations.StandardsAlignment, 3)

	for i, r := range []domain.Rating{domain.RatingBest, domain.RatingMiddle} {
		v, err = f.session.RateStandard("17cbcbbd", i, r)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPartial, v.Status)
	}

	v, err = f.session.RateStandard("17cbcbbd", 2, domain.RatingWorst)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, v.Status)
	assert.Equal(t, "#bbf7d0", v.Badge.Background)
	assert.Equal(t, fixedNow, *v.Annotations.StandardsAlignment[2].AnnotatedAt)

	assert.Equal(t, annotation.Progress{Total: 3, NotStarted: 2, Done: 1}, f.session.Progress())
}

func TestSession_RapidClicksLoseNothing(t *testing.T) {
	f := newFixture(t, in_mem.NewBlobStore(), nil, slowSync())
	f.session.Start(context.Background())

	ratings := domain.Ratings
	for i := 0; i < 60; i++ {
		r := ratings[i%len(ratings)]
		_, err := f.session.RateTranslation("b1", r)
		require.NoError(t, err)
		_, err = f.session.RateStandard("b1", 0, ratings[(i+1)%len(ratings)])
		require.NoError(t, err)
		_, err = f.session.CommentTranslation("a0", "edit")
		require.NoError(t, err)

		// local storage holds every version before the next event is handled
		persisted := f.local.Load()
		if diff := cmp.Diff(f.session.Annotations().Entries(), persisted.Entries()); diff != "" {
			t.Fatalf("local copy diverged after click %d (-want +got):\n%s", i, diff)
		}
	}

	a, ok := f.local.Load().Get("b1")
	require.True(t, ok)
	assert.Equal(t, ratings[59%len(ratings)], a.SpanishTranslationQuality.Rating)
}

func TestSession_RejectedMutationChangesNothing(t *testing.T) {
	f := newFixture(t, in_mem.NewBlobStore(), nil, slowSync())
	f.session.Start(context.Background())

	_, err := f.session.RateTranslation("missing", domain.RatingBest)
	var notFound *apperr.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = f.session.RateStandard("b1", 1, domain.RatingBest)
	var validation *apperr.ValidationError
	assert.ErrorAs(t, err, &validation)

	_, err = f.session.RateTranslation("b1", domain.Rating("Great"))
	assert.ErrorAs(t, err, &validation)

	assert.True(t, f.session.Annotations().IsEmpty())
	_, ok, err := f.kv.Get(local.AnnotationsKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_AutosaveUploadsSnapshot(t *testing.T) {
	blobs := in_mem.NewBlobStore()
	f := newFixture(t, blobs, nil, syncer.Config{DebounceWindow: 30 * time.Millisecond, StatusWindow: 20 * time.Millisecond})
	f.session.Start(context.Background())

	_, err := f.session.RateTranslation("a0", domain.RatingMiddle)
	require.NoError(t, err)

	var data []byte
	require.Eventually(t, func() bool {
		data, err = blobs.Download(context.Background(), storage.DefaultContainer, storage.DefaultObjectKey)
		return err == nil
	}, time.Second, 5*time.Millisecond)

	recovered, err := snapshot.Extract(data)
	require.NoError(t, err)
	assert.True(t, recovered.Equal(f.session.Annotations()))
}

func TestSession_RecoveryAfterLocalStorageCleared(t *testing.T) {
	blobs := in_mem.NewBlobStore()
	first := newFixture(t, blobs, nil, slowSync())
	first.session.Start(context.Background())

	_, err := first.session.RateTranslation("17cbcbbd", domain.RatingBest)
	require.NoError(t, err)
	_, err = first.session.CommentStandard("17cbcbbd", 1, "not aligned")
	require.NoError(t, err)
	require.NoError(t, first.session.SaveNow(context.Background()))

	// same device, cache wiped
	first.kv.Clear()
	second := newFixture(t, blobs, first.kv, slowSync())
	assert.True(t, second.session.Start(context.Background()))

	if diff := cmp.Diff(first.session.Annotations().Entries(), second.session.Annotations().Entries()); diff != "" {
		t.Fatalf("recovered map differs (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, second.local.Load().Len())
}

func TestSession_NoRecoveryWhenLocalHasData(t *testing.T) {
	blobs := in_mem.NewBlobStore()
	a, err := annotation.RateTranslation(annotation.New(domain.Sample{ID: "a0"}), domain.RatingWorst, fixedNow)
	require.NoError(t, err)
	remote := annotation.NewMap().Set("a0", a)
	data, err := snapshot.Encode(testDataset().Samples(), remote)
	require.NoError(t, err)
	require.NoError(t, blobs.Upload(context.Background(), storage.DefaultContainer, storage.DefaultObjectKey, data))

	kv := local.NewMemoryKV()
	b, err := annotation.RateTranslation(annotation.New(domain.Sample{ID: "b1"}), domain.RatingBest, fixedNow)
	require.NoError(t, err)
	require.NoError(t, local.NewStore(kv).Save(annotation.NewMap().Set("b1", b)))

	f := newFixture(t, blobs, kv, slowSync())
	assert.False(t, f.session.Start(context.Background()))

	_, ok := f.session.Annotations().Get("a0")
	assert.False(t, ok)
	_, ok = f.session.Annotations().Get("b1")
	assert.True(t, ok)
}

func TestSession_StartAlignsStandardSlots(t *testing.T) {
	kv := local.NewMemoryKV()
	short := annotation.New(domain.Sample{ID: "17cbcbbd", MatchedStandards: []domain.MatchedStandard{{StandardCode: "MS-LS1-2"}}})
	require.NoError(t, local.NewStore(kv).Save(annotation.NewMap().Set("17cbcbbd", short)))

	f := newFixture(t, in_mem.NewBlobStore(), kv, slowSync())
	f.session.Start(context.Background())

	v, err := f.session.Sample("17cbcbbd")
	require.NoError(t, err)
	require.NotNil(t, v.Annotations)
	assert.Len(t, v.Annotations.StandardsAlignment, 3)

	persisted, ok := f.local.Load().Get("17cbcbbd")
	require.True(t, ok)
	assert.Len(t, persisted.StandardsAlignment, 3)
}

func TestSession_SaveNowFailureKeepsLocalData(t *testing.T) {
	f := newFixture(t, failingStore{BlobStore: in_mem.NewBlobStore()}, nil, slowSync())
	f.session.Start(context.Background())

	_, err := f.session.RateTranslation("a0", domain.RatingBest)
	require.NoError(t, err)

	err = f.session.SaveNow(context.Background())
	var upstream *apperr.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, SaveFailedMessage, upstream.Message)
	assert.Equal(t, syncer.StateError, f.session.SyncStatus().State)

	assert.Equal(t, 1, f.local.Load().Len())
}

func TestSession_ListAndFilter(t *testing.T) {
	f := newFixture(t, in_mem.NewBlobStore(), nil, slowSync())
	f.session.Start(context.Background())

	_, err := f.session.RateTranslation("a0", domain.RatingBest)
	require.NoError(t, err)

	all := f.session.List(nil)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"17cbcbbd", "a0", "b1"}, []string{all[0].ID, all[1].ID, all[2].ID})

	done := domain.StatusDone
	filtered := f.session.List(&done)
	require.Len(t, filtered, 1)
	assert.Equal(t, "a0", filtered[0].ID)
}

func TestSession_Export(t *testing.T) {
	f := newFixture(t, in_mem.NewBlobStore(), nil, slowSync())
	f.session.Start(context.Background())

	file, err := f.session.Export(export.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "annotated_cells_2024-05-01.json", file.Name)

	snap, err := f.session.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, snap, file.Data)
}

func TestSession_CloseFlushesPendingAutosave(t *testing.T) {
	blobs := in_mem.NewBlobStore()
	s := NewSession(testDataset(), local.NewStore(local.NewMemoryKV()), syncer.New(blobs, slowSync()))
	s.Start(context.Background())

	_, err := s.RateTranslation("a0", domain.RatingBest)
	require.NoError(t, err)
	s.Close()

	_, err = blobs.Download(context.Background(), storage.DefaultContainer, storage.DefaultObjectKey)
	assert.NoError(t, err)
}
