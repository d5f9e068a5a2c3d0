// SPDX-License-Identifier: EPL-2.0

// Package peaks builds multi-resolution min/max summaries of PCM audio for
// waveform rendering.
//
// A renderer drawing a waveform needs, for every output column, the extrema
// of a run of consecutive samples. Rescanning raw samples on every redraw
// costs O(samples) per frame of UI work; peaks computes the extrema once,
// at several bin sizes, so the renderer picks the level closest to its zoom
// factor and reads precomputed pairs instead.
//
// # Building
//
// A cache is built once, synchronously, from a fully decoded interleaved
// buffer:
//
//	cache, err := peaks.Build(samples, channels)
//
// samples is frame-major interleaved float32 with channels samples per
// frame, each in [-1, 1]. Build summarizes every channel at the standard
// bin sizes {10, 20, 50, 100}; BuildWith takes a custom strictly increasing
// list:
//
//	sizes, _ := peaks.NewBinSizes(16, 64, 256, 1024)
//	cache, err := peaks.BuildWith(sizes, samples, channels)
//
// # Levels and Bins
//
// A Level is the summary of one channel at one bin size: bin i covers
// frames [i*binSize, (i+1)*binSize) and records the true minimum and
// maximum sample inside that run. A trailing run shorter than the bin size
// is dropped, so a Level holds exactly floor(frames/binSize) bins. Levels
// for a given bin size are fetched by index:
//
//	idx, ok := cache.BinSizes().Index(50)
//	if !ok {
//	    // 50 is not a configured bin size
//	}
//	level, err := cache.Level(channel, idx)
//	for i := range level.Len() {
//	    drawColumn(level.Min(i), level.Max(i))
//	}
//
// # Cascading
//
// Levels after the first are not rescanned from raw samples when a cheaper
// path exists: a level whose bin size is an integer multiple of an
// already-built one is reduced from that level instead ("min of mins, max
// of maxes"). With the standard sizes, the 20-frame level reduces the
// 10-frame level, 50 reduces 10, and 100 reduces 50. Cascaded levels are
// identical, bin for bin, to levels built directly from the raw buffer.
//
// # Slicing
//
// Slice restricts a cache to a frame range without copying bin data:
//
//	window, err := cache.Slice(startFrame, endFrame)
//
// The sliced cache has the same channels and bin sizes; each level becomes
// the bin range [startFrame/binSize, endFrame/binSize) of the original,
// sharing the original arrays. Slices may be sliced again. There is no
// lifetime rule to manage: the shared arrays stay alive as long as any view
// references them.
//
// # Concurrency
//
// Build runs channel hierarchies in parallel internally but returns only
// when every level is complete. A built Cache is immutable: any number of
// goroutines may read and slice it concurrently without locking. Publishing
// the *Cache to readers requires the usual single synchronized handoff
// (channel send, mutex, or atomic pointer); afterwards no synchronization
// is needed. There is no incremental update: when the underlying samples
// change, build a new cache and drop the old one.
//
// # Error Handling
//
// Precondition violations (non-positive bin size or channel count, channel
// or level index out of range, inverted or out-of-bounds frame ranges,
// buffers whose length is not a multiple of the channel count) return
// descriptive sentinel errors; see errors.go. Short buffers are not errors:
// a buffer with fewer frames than a bin size yields zero-length levels.
package peaks
