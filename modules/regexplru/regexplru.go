// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package regexplru

import (
	"sync"

	"github.com/dlclark/regexp2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the number of compiled expressions kept when Init is not called
const DefaultSize = 1000

type cacheKey struct {
	expr string
	opts regexp2.RegexOptions
}

var (
	lruCache *lru.Cache[cacheKey, any]
	initOnce sync.Once
)

// Init sets the cache size, it only takes effect if it is called before the first GetCompiled
func Init(size int) {
	initOnce.Do(func() {
		if size <= 0 {
			size = DefaultSize
		}
		// only fails for a non-positive size
		lruCache, _ = lru.New[cacheKey, any](size)
	})
}

// GetCompiled works like regexp2.Compile, the compiled expr or error is stored in LRU cache
func GetCompiled(expr string, opts regexp2.RegexOptions) (r *regexp2.Regexp, err error) {
	Init(DefaultSize)
	key := cacheKey{expr: expr, opts: opts}
	v, ok := lruCache.Get(key)
	if !ok {
		r, err = regexp2.Compile(expr, opts)
		if err != nil {
			lruCache.Add(key, err)
			return nil, err
		}
		lruCache.Add(key, r)
		return r, nil
	}
	switch v := v.(type) {
	case *regexp2.Regexp:
		return v, nil
	case error:
		return nil, v
	}
	panic("impossible")
}

// Len returns the number of cached entries
func Len() int {
	Init(DefaultSize)
	return lruCache.Len()
}
