// Package abi is the address-level function table a host runtime calls across
// a foreign-function or WebAssembly boundary.
//
// Buffers are identified only by base pointer. Ownership of every buffer
// returned here passes to the caller, which must release a typed buffer with
// the same element count it allocated it with. Nothing validates a release,
// a stale address or a conversion count against the buffers behind it: such
// misuse is undefined behavior and typically crashes.
//
// Allocation failure and size overflow panic. There is no recoverable error on
// this surface.
package abi
