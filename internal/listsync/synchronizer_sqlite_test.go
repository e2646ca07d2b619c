package listsync

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/events"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// TestSynchronizer_MatchesStore drives the gateway, the bus and the
// synchronizer together and checks after every step that the list holds
// exactly the stored notes in store order.
func TestSynchronizer_MatchesStore(t *testing.T) {
	ctx := context.Background()
	storages, err := store.NewLocalStorages(ctx, config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "notes.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	tick := 0
	clock := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	gateway := service.NewNoteGateway(storages.NoteRepository, service.CommitReport, logger.Nop(), service.WithClock(clock))
	sync := New(nil, Strict, logger.Nop())
	bus := events.NewBus(logger.Nop())
	bus.Subscribe(sync)

	loaded, err := gateway.LoadAll(ctx)
	require.NoError(t, err)
	sync.Load(loaded)

	checkInSync := func(step string) {
		t.Helper()
		stored, err := gateway.LoadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.NoteIDs(stored), sync.IDs(), step)
	}

	var created []models.Note
	for _, title := range []string{"one", "two", "three", "four"} {
		n, err := gateway.Create(ctx, title, "")
		require.NoError(t, err)
		require.NoError(t, bus.Publish(ctx, models.NewNoteCreatedEvent(n)))
		created = append(created, n)
		checkInSync("create " + title)
	}

	for _, i := range []int{0, 2, 1, 0} {
		n, err := gateway.Update(ctx, created[i], created[i].Title, "edited")
		require.NoError(t, err)
		created[i] = n
		require.NoError(t, bus.Publish(ctx, models.NewNoteSavedEvent(n)))
		checkInSync("update " + n.Title)
	}

	for _, i := range []int{3, 0} {
		require.NoError(t, gateway.Delete(ctx, created[i]))
		require.NoError(t, bus.Publish(ctx, models.NewNoteDeletedEvent(created[i].ID)))
		checkInSync("delete " + created[i].Title)
	}

	assert.Equal(t, 2, sync.Len())
}
