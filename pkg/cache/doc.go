// Package cache provides a generic, thread-safe LRU cache with a fixed
// capacity and O(1) Get/Put/Remove operations.
//
// Its primary consumer in this module is the derived-key cache in
// pkg/keyder, where it bounds the memory spent on amortizing expensive
// PBKDF2 derivations, but it is usable for any bounded in-memory caching.
//
// # Usage
//
//	c := cache.NewLRU[string, []byte](128)
//	c.Put("k", []byte("v"))
//	if v, ok := c.Get("k"); ok {
//		_ = v
//	}
//
// All methods are safe for concurrent use.
package cache
