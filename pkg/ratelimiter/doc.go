// Package ratelimiter implements token bucket rate limiting with an in-memory
// store and a net/http middleware.
//
// Each key owns a bucket of Capacity tokens refilled by RefillRate every
// RefillInterval. A request takes one token; once the bucket is empty further
// requests are denied without draining it further, so a client that keeps
// retrying recovers as soon as the next refill lands.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.With(ratelimiter.Middleware(bucket, func(r *http.Request) string {
//		return clientip.FromContext(r.Context())
//	})).Post("/api/qr/{kind}", handler)
//
// Config carries env tags (CAPACITY, REFILL_RATE, REFILL_INTERVAL) for use
// with caarlos0/env under a prefix.
package ratelimiter
