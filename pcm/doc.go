// Package pcm converts normalized float32 audio samples to 16-bit PCM.
//
// Each sample is clamped to [-1, 1], multiplied by 32767 in float32 and
// truncated toward zero. NaN converts to 0. Samples are processed left to
// right in groups of [Lanes] by the fastest registered kernel; the final
// partial group is converted by the same per-sample helper, so every output
// element is written whatever the length.
//
// Conversion is stateless and allocation-free and may run concurrently on
// disjoint buffers.
package pcm
