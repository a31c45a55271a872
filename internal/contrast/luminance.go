package contrast

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
)

// luminanceCache memoizes the pure Luminance function. The same swatches
// recur across a design system, so hits dominate in practice. Counters are
// atomic so the hit path never takes the write lock.
var luminanceCache = struct {
	sync.RWMutex
	values map[string]float64
	hits   atomic.Uint64
	misses atomic.Uint64
}{values: make(map[string]float64)}

// CacheStats reports luminance cache usage.
type CacheStats struct {
	Size   int
	Hits   uint64
	Misses uint64
}

// Luminance computes WCAG 2.1 relative luminance: each sRGB channel is
// gamma-decoded (linear below the 0.03928 threshold), then weighted
// 0.2126/0.7152/0.0722.
func Luminance(c RGB) float64 {
	key := fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)

	luminanceCache.RLock()
	v, ok := luminanceCache.values[key]
	luminanceCache.RUnlock()
	if ok {
		luminanceCache.hits.Add(1)
		return v
	}

	v = 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)

	luminanceCache.misses.Add(1)
	luminanceCache.Lock()
	luminanceCache.values[key] = v
	luminanceCache.Unlock()

	return v
}

func linearize(channel uint8) float64 {
	c := float64(channel) / 255.0
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Ratio computes the WCAG contrast ratio between two colors. The result is
// in [1, 21] and independent of argument order.
func Ratio(a, b RGB) float64 {
	la, lb := Luminance(a), Luminance(b)
	hi, lo := la, lb
	if lo > hi {
		hi, lo = lo, hi
	}
	return (hi + 0.05) / (lo + 0.05)
}

// ClearCache empties the luminance cache and resets its counters.
func ClearCache() {
	luminanceCache.Lock()
	luminanceCache.values = make(map[string]float64)
	luminanceCache.Unlock()
	luminanceCache.hits.Store(0)
	luminanceCache.misses.Store(0)
}

// Stats returns a snapshot of cache usage.
func Stats() CacheStats {
	luminanceCache.RLock()
	size := len(luminanceCache.values)
	luminanceCache.RUnlock()
	return CacheStats{
		Size:   size,
		Hits:   luminanceCache.hits.Load(),
		Misses: luminanceCache.misses.Load(),
	}
}
