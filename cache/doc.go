// cache provides a memory-bounded store for rasterized glyphs.
//
// Rasterizing a glyph outline is much more expensive than copying its
// pixels into a title bitmap, so rasterizers keep the glyphs they have
// already produced around and re-renders of similar titles become
// almost free. The cache is size-bounded and evicts cold entries
// through random sampling; see [DefaultCache] for details.
package cache
