// Package ratelimiter implements token bucket rate limiting over a pluggable Store.
//
// A bucket holds up to Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that finds too few
// tokens is denied and takes nothing.
//
//	store := ratelimiter.NewMemoryStore()
//	g.Go(store.Run(ctx))
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       30,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//
//	res, err := limiter.Allow(ctx, clientip.GetIP(r))
//	if err == nil && !res.Allowed() {
//		// reply 429, Retry-After: res.RetryAfter()
//	}
//
// MemoryStore is process-local. Its cleanup loop drops buckets idle for an hour.
package ratelimiter
