package cache

import "sync/atomic"
import _ "unsafe"

import "github.com/csdtk/titletext/internal"

//go:linkname systemMonoNanoTime runtime.nanotime

//go:noescape
func systemMonoNanoTime() int64

// A cached glyph raster with additional information to estimate how
// much the entry is being used.
type cachedGlyphEntry struct {
	Glyph *internal.Glyph // Read-only.
	ByteSize uint32 // Read-only.
	CreationInstant uint32 // see cacheEntryInstant(). Read-only.
	accessCount uint32 // number of times the entry has been accessed
}

// Must be called after accessing an entry in order to keep the
// Hotness() heuristic making sense. Concurrent-safe.
func (self *cachedGlyphEntry) IncreaseAccessCount() {
	atomic.AddUint32(&self.accessCount, 1)
}

// A measure of "bytes accessed per time". Coldest entries
// (smallest values) are candidates for eviction. Concurrent-safe.
func (self *cachedGlyphEntry) Hotness(instant uint32) uint32 {
	const ConstEvictionCost = 1000 // additional threshold and pad
	bytesHit := self.ByteSize*atomic.LoadUint32(&self.accessCount)
	elapsed  := instant - self.CreationInstant
	if elapsed == 0 { elapsed = 1 }
	return (ConstEvictionCost + bytesHit)/elapsed
}

// Testing hook. Without this, exercising eviction paths would require
// time.Sleep() calls.
var testInstantNanosHack int64

// A time instant related to the system's monotonic nano time, but with
// some arbitrary downscaling applied (close to converting nanoseconds
// to hundredth's of seconds).
func cacheEntryInstant() uint32 {
	return uint32((systemMonoNanoTime() + testInstantNanosHack) >> 27)
}

// Creates a new cache entry for the given glyph.
func newCachedGlyphEntry(glyph *internal.Glyph) (*cachedGlyphEntry, uint32) {
	instant := cacheEntryInstant()
	return &cachedGlyphEntry {
		Glyph: glyph,
		ByteSize: glyph.ByteSize(),
		CreationInstant: instant,
		accessCount: 1,
	}, instant
}
