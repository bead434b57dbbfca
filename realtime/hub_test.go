package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubNotify(t *testing.T) {
	hub := NewHub()

	ch, unsubscribe := hub.Subscribe("season_scores")
	defer unsubscribe()

	hub.Notify("season_scores")

	select {
	case <-ch:
	default:
		t.Fatal("expected a signal")
	}
}

func TestHubTableScoping(t *testing.T) {
	hub := NewHub()

	scoresCh, unsubScores := hub.Subscribe("season_scores")
	defer unsubScores()
	seasonsCh, unsubSeasons := hub.Subscribe("seasons")
	defer unsubSeasons()

	hub.Notify("seasons")

	select {
	case <-scoresCh:
		t.Fatal("season_scores subscriber must not see seasons changes")
	default:
	}
	select {
	case <-seasonsCh:
	default:
		t.Fatal("seasons subscriber missed its signal")
	}
}

func TestHubNonBlocking(t *testing.T) {
	hub := NewHub()

	ch, unsubscribe := hub.Subscribe("season_scores")
	defer unsubscribe()

	// a subscriber that never drains must not block the notifier
	for i := 0; i < 10; i++ {
		hub.Notify("season_scores")
	}

	// pending signals collapse into one
	<-ch
	select {
	case <-ch:
		t.Fatal("expected signals to coalesce")
	default:
	}
}

func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()

	ch, unsubscribe := hub.Subscribe("season_scores")
	require.Equal(t, 1, hub.SubscriberCount("season_scores"))

	unsubscribe()
	assert.Equal(t, 0, hub.SubscriberCount("season_scores"))

	hub.Notify("season_scores")
	select {
	case <-ch:
		t.Fatal("unsubscribed channel received a signal")
	default:
	}
}

func TestHubMultipleSubscribers(t *testing.T) {
	hub := NewHub()

	const n = 3
	chans := make([]<-chan struct{}, n)
	for i := 0; i < n; i++ {
		ch, unsubscribe := hub.Subscribe("season_scores")
		defer unsubscribe()
		chans[i] = ch
	}

	hub.Notify("season_scores")

	for i, ch := range chans {
		select {
		case <-ch:
		default:
			t.Fatalf("subscriber %d missed the signal", i)
		}
	}
}
