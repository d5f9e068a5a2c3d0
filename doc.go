// SPDX-License-Identifier: EPL-2.0

// Package audwave builds multi-resolution waveform caches from decoded
// audio.
//
// The heavy lifting lives in the peaks subpackage: it reduces interleaved
// PCM to per-channel min/max summaries at several bin sizes, so waveform
// renderers can redraw at any zoom factor without rescanning samples. This
// package is the glue between real-world audio inputs and that core: it
// accepts go-audio PCM buffers and streaming decoder sources and hands the
// result to peaks.
//
// # Quick Start
//
// The simplest input is a decoded go-audio buffer:
//
//	f, _ := os.Open("audio.wav")
//	dec := wav.NewDecoder(f)
//	buf, _ := dec.FullPCMBuffer()
//
//	cache, err := audwave.BuildFromBuffer(buf)
//
// The cache then answers zoom queries without touching the samples again:
//
//	idx, ok := cache.BinSizes().Index(50)
//	level, err := cache.Level(channel, idx)
//	window, err := cache.Slice(startFrame, endFrame)
//
// # Streaming Sources
//
// Decoder pipelines that produce interleaved float32 PCM implement Source;
// BuildFromSource drains one and summarizes it:
//
//	cache, err := audwave.BuildFromSource(src, 4096)
//
// The buffer size controls the read chunk and must be a multiple of the
// channel count. ReadAll is the drain step on its own, for callers that
// want the raw interleaved buffer too.
//
// # Normalization
//
// peaks expects samples in [-1, 1]. BuildFromBuffer normalizes go-audio int
// buffers by their source bit depth (8, 16, 24 or 32 bit) and takes float
// buffers as already normalized. The utils subpackage exports the
// conversion helpers for callers preparing buffers by hand.
//
// # Scope
//
// This module computes and serves waveform summaries; it does not decode
// files, play audio, or draw anything. Decoding belongs to libraries like
// go-audio/wav, go-audio/aiff, go-mp3 and oggvorbis (see examples/waveinfo
// for wiring), playback and rendering belong to the caller.
package audwave
