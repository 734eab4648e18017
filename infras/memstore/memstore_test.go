package memstore_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetclinic/infras/memstore"
	clientModel "vetclinic/internal/domains/client/model"
	petModel "vetclinic/internal/domains/pet/model"
	visitModel "vetclinic/internal/domains/visit/model"
	"vetclinic/shared/cache"
	gDto "vetclinic/shared/dto"
	"vetclinic/shared/timerange"
)

func visitAt(id, vetID string, start time.Time, d time.Duration, status visitModel.Status) visitModel.Visit {
	v := visitModel.Visit{ID: id, VetID: vetID, PetID: "pet-1", TreatmentRoomID: "room-1", Status: status}
	v.SetSchedule(start, d)

	return v
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	store := memstore.New()
	start := time.Date(2021, 4, 15, 10, 0, 0, 0, time.UTC)

	store.AddVisits(visitAt("kept", "vet-1", start, time.Hour, visitModel.StatusScheduled))

	boom := errors.New("boom")

	err := store.WithinTx(context.Background(), func(ctx context.Context) error {
		require.NoError(t, store.Visits().Insert(ctx, visitAt("dropped", "vet-1", start, time.Hour, visitModel.StatusScheduled)))

		_, err := store.Visits().Delete(ctx, "kept")
		require.NoError(t, err)

		return boom
	})

	assert.ErrorIs(t, err, boom)

	visits := store.AllVisits()
	require.Len(t, visits, 1)
	assert.Equal(t, "kept", visits[0].ID)
}

func TestWithinTx_Nested(t *testing.T) {
	store := memstore.New()

	err := store.WithinTx(context.Background(), func(ctx context.Context) error {
		return store.WithinTx(ctx, func(ctx context.Context) error {
			_, err := store.Visits().Count(ctx, "")

			return err
		})
	}, "vet:1", "treatment-rooms")

	assert.NoError(t, err)
}

func TestVisits_RangeQueries(t *testing.T) {
	store := memstore.New()
	base := time.Date(2021, 4, 15, 10, 0, 0, 0, time.UTC)

	store.AddVisits(
		visitAt("a", "vet-1", base, time.Hour, visitModel.StatusScheduled),
		visitAt("b", "vet-1", base.Add(2*time.Hour), time.Hour, visitModel.StatusCancelled),
		visitAt("c", "vet-2", base.Add(30*time.Minute), 2*time.Hour, visitModel.StatusFinished),
	)

	ctx := context.Background()
	visits := store.Visits()

	touching, err := visits.FindOverlappingForVet(ctx, "vet-1", timerange.New(base.Add(time.Hour), time.Hour))
	require.NoError(t, err)
	assert.Len(t, touching, 1, "cancelled visits never conflict")

	inRange, err := visits.FindOverlappingInRange(ctx, timerange.New(base.Add(2*time.Hour), time.Minute))
	require.NoError(t, err)
	assert.Len(t, inRange, 2, "every status holds its room")

	within, err := visits.FindFullyWithinRange(ctx, timerange.New(base, 2*time.Hour), []string{"vet-1", "vet-2"})
	require.NoError(t, err)
	require.Len(t, within, 1)
	assert.Equal(t, "a", within[0].ID)

	expired, err := visits.FindExpiredScheduled(ctx, base.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, expired, "end equal to now has not elapsed")

	expired, err = visits.FindExpiredScheduled(ctx, base.Add(time.Hour+time.Second))
	require.NoError(t, err)
	assert.Len(t, expired, 1)

	changed, err := visits.MarkExpired(ctx, []string{"a", "c"}, base, "system")
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)
}

func TestVisits_GetAllOwnedBy(t *testing.T) {
	store := memstore.New()
	base := time.Date(2021, 4, 15, 10, 0, 0, 0, time.UTC)

	store.AddClients(
		clientModel.Client{ID: "c1", UserID: sql.NullString{String: "Jane", Valid: true}},
		clientModel.Client{ID: "c2"},
	)
	store.AddPets(petModel.Pet{ID: "p1", ClientID: "c1"}, petModel.Pet{ID: "p2", ClientID: "c2"})

	mine := visitAt("mine", "vet-1", base, time.Hour, visitModel.StatusScheduled)
	mine.PetID = "p1"
	other := visitAt("other", "vet-1", base.Add(2*time.Hour), time.Hour, visitModel.StatusScheduled)
	other.PetID = "p2"

	store.AddVisits(other, mine)

	ctx := context.Background()

	owned, err := store.Visits().GetAll(ctx, gDto.QueryParams{}, "jane")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "mine", owned[0].ID)

	all, err := store.Visits().GetAll(ctx, gDto.QueryParams{Page: 1, Limit: 1, SortDir: gDto.SortDirAsc}, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "mine", all[0].ID, "ordered by start")

	count, err := store.Visits().Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCache(t *testing.T) {
	ctx := context.Background()
	c := memstore.NewCache()

	require.NoError(t, c.Save(ctx, "visit:available:a", map[string]int{"n": 1}, 60))
	require.NoError(t, c.Save(ctx, "room:gets", "x", 60))

	var got map[string]int
	require.NoError(t, c.Get(ctx, "visit:available:a", &got))
	assert.Equal(t, 1, got["n"])

	require.NoError(t, c.Clear(ctx, "visit:available*"))
	assert.False(t, c.Has("visit:available:a"))
	assert.True(t, c.Has("room:gets"))
	assert.ErrorIs(t, c.Get(ctx, "visit:available:a", &got), cache.Nil)

	first, err := c.Increment(ctx, "limiter", 60)
	require.NoError(t, err)
	second, err := c.Increment(ctx, "limiter", 60)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}
