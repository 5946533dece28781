// Package memory provides the byte allocators behind the host-facing buffer
// API.
//
// An Allocator hands out raw byte regions and takes them back by the same
// slice shape. Callers that cross an address-only boundary keep the base as
// an unsafe.Pointer and rebuild the slice with At and the original size when
// they release it; no allocator here checks that the size matches. A
// mismatched release is a caller bug, not a reported error.
//
// Allocation failure is fatal: every implementation panics instead of
// returning an empty region.
package memory
