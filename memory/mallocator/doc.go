// Package mallocator allocates from the C heap with malloc and free.
//
// It is only available in cgo builds. Regions live outside the Go heap, so
// nothing keeps track of them: a region that is not freed leaks and a region
// freed twice corrupts the C heap.
package mallocator
