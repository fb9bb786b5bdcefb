package core

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/isfarbaset/git-wrapped/internal/contract"
	"github.com/isfarbaset/git-wrapped/schema"
)

// cardCacheVersion invalidates cached cards when the stored shape changes.
const cardCacheVersion = 1

// cardCacheKey normalizes the account identifier so lookups are
// case-insensitive.
func cardCacheKey(username string) string {
	return strings.ToLower(username)
}

// checkCacheHit looks up a fresh cached card for the account. A stale or
// version-mismatched entry is treated as a miss, and expired entries are
// deleted lazily on read. Cache errors are misses, never run failures.
func checkCacheHit(manager contract.CacheManager, username string) *schema.CachedCard {
	store := manager.GetCardStore()
	if store == nil {
		return nil
	}

	key := cardCacheKey(username)
	value, version, timestamp, err := store.Get(key)
	if err != nil || value == nil {
		return nil
	}
	if version != cardCacheVersion {
		return nil
	}
	if time.Since(time.Unix(timestamp, 0)) > contract.CacheTTL {
		if err := store.Delete(key); err != nil {
			contract.LogWarn("Failed to evict expired cache entry", err)
		}
		return nil
	}

	var card schema.CachedCard
	if err := json.Unmarshal(value, &card); err != nil {
		contract.LogWarn("Failed to decode cached card", err)
		return nil
	}
	if card.Profile == nil || card.Stats == nil {
		return nil
	}
	return &card
}

// storeCard writes a freshly computed card to the cache. Failures are
// logged and otherwise ignored; caching is best effort.
func storeCard(manager contract.CacheManager, username string, card *schema.CachedCard) {
	store := manager.GetCardStore()
	if store == nil {
		return
	}

	value, err := json.Marshal(card)
	if err != nil {
		contract.LogWarn("Failed to encode card for caching", err)
		return
	}
	if err := store.Set(cardCacheKey(username), value, cardCacheVersion, time.Now().Unix()); err != nil {
		contract.LogWarn("Failed to cache card", err)
	}
}
