package postcache

import (
	"context"
	"log"
	"time"

	webstorage "github.com/louisbranch/postboard/internal/services/web/storage"
)

// DefaultSweepInterval is how often expired cache rows are purged.
const DefaultSweepInterval = time.Minute

// RunSweeper purges stale and expired cache rows every interval until ctx is
// done. It sweeps once immediately. A nil store returns at once.
func RunSweeper(ctx context.Context, store webstorage.Store, interval time.Duration) {
	if store == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	sweep(ctx, store)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep(ctx, store)
		}
	}
}

func sweep(ctx context.Context, store webstorage.Store) {
	removed, err := store.PurgeExpired(ctx, time.Now().UTC())
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("post cache sweep failed: %v", err)
		}
		return
	}
	if removed > 0 {
		log.Printf("post cache sweep removed=%d", removed)
	}
}
