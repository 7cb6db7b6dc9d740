package monitor

import (
	"context"
	"fmt"
	"log"

	"reddit-monitor/database"
	"reddit-monitor/models"
	"reddit-monitor/notifier"
	"reddit-monitor/scanner"
	"reddit-monitor/utils"
)

// Store is everything a scan cycle needs from the discovery store.
// *database.DB implements it.
type Store interface {
	PurgeOldDiscoveries(hours int) error
	InsertDiscovery(disc models.Discovery) (bool, error)
	notifier.Store
}

// Monitor runs the scan/store/notify pipeline.
type Monitor struct {
	cfg      models.MonitorConfig
	store    Store
	scanner  *scanner.Scanner
	notifier *notifier.Notifier
}

// New wires a Monitor from its collaborators.
func New(cfg models.MonitorConfig, store Store, searcher scanner.Searcher, messenger notifier.Messenger) *Monitor {
	return &Monitor{
		cfg:      cfg,
		store:    store,
		scanner:  scanner.NewScanner(searcher),
		notifier: notifier.NewNotifier(store, messenger, cfg.DigestChannelID),
	}
}

// Run executes one scan cycle: purge expired discoveries, scan all
// forum/keyword pairs, store the candidates, and send a digest when anything
// new turned up. An error aborts only this cycle; the store is left in a
// consistent state for the next one.
func (m *Monitor) Run(ctx context.Context) error {
	log.Println("Starting scan...")

	if err := m.store.PurgeOldDiscoveries(database.RetentionHours); err != nil {
		return fmt.Errorf("purge failed: %w", err)
	}

	candidates := m.scanner.Scan(ctx, m.cfg.Forums, m.cfg.Keywords, m.cfg.MinRelevanceScore)

	newCount := 0
	for _, candidate := range candidates {
		inserted, err := m.store.InsertDiscovery(candidate)
		if err != nil {
			return fmt.Errorf("storing discovery %s failed: %w", candidate.ID, err)
		}
		if inserted {
			newCount++
		}
	}

	log.Printf("Found %d relevant posts, %d new.", len(candidates), newCount)

	if newCount > 0 {
		notified, err := m.notifier.Notify(newCount)
		if err != nil {
			return fmt.Errorf("notify failed: %w", err)
		}
		utils.Info("Monitor", "Scan", fmt.Sprintf("Sent digest with %d discoveries (%d new this cycle)", notified, newCount))
	}

	return nil
}
