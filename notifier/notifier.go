package notifier

import (
	"fmt"
	"log"
	"strings"

	"reddit-monitor/models"
)

// DigestLimit bounds how many discoveries go into a single digest message.
const DigestLimit = 20

// Store is the slice of the discovery store the notifier needs.
type Store interface {
	ListUnnotified(limit int) ([]models.Discovery, error)
	MarkNotified(id string) error
}

// Messenger is the messaging collaborator that delivers a digest.
type Messenger interface {
	SendDigest(channelID, content string) error
}

// Notifier sends batched discovery digests.
type Notifier struct {
	store     Store
	messenger Messenger
	channelID string
}

// NewNotifier creates a Notifier delivering to the given channel.
func NewNotifier(store Store, messenger Messenger, channelID string) *Notifier {
	return &Notifier{store: store, messenger: messenger, channelID: channelID}
}

// Notify sends one digest message covering the pending discoveries, highest
// relevance first, then marks them notified. newCount is shown in the digest
// header. Returns how many discoveries were included. If nothing is pending,
// no message is sent. If the send fails, nothing is marked, so the same batch
// is retried on the next cycle.
func (n *Notifier) Notify(newCount int) (int, error) {
	pending, err := n.store.ListUnnotified(DigestLimit)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending discoveries: %w", err)
	}
	if len(pending) == 0 {
		log.Println("No new discoveries to notify.")
		return 0, nil
	}

	if err := n.messenger.SendDigest(n.channelID, formatDigest(newCount, pending)); err != nil {
		return 0, fmt.Errorf("failed to send digest: %w", err)
	}

	for _, disc := range pending {
		if err := n.store.MarkNotified(disc.ID); err != nil {
			return 0, fmt.Errorf("failed to mark discovery %s notified: %w", disc.ID, err)
		}
	}
	return len(pending), nil
}

// formatDigest renders the digest body.
func formatDigest(newCount int, discoveries []models.Discovery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 **Reddit Monitor Digest**\n%d new discoveries\n\n", newCount)
	for _, disc := range discoveries {
		fmt.Fprintf(&b, "• [%d/10] r/%s\n  %s\n  %s\n\n", disc.Relevance, disc.Forum, truncate(disc.Title, 100), disc.URL)
	}
	return b.String()
}

// truncate trims a title to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
