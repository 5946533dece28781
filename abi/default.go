package abi

import "unsafe"

// Default is the Runtime behind the package-level functions and the exported
// wasm entry points.
var Default = New()

// AllocInt16 calls Default.AllocInt16.
func AllocInt16(count uint) unsafe.Pointer { return Default.AllocInt16(count) }

// FreeInt16 calls Default.FreeInt16.
func FreeInt16(p unsafe.Pointer, count uint) { Default.FreeInt16(p, count) }

// AllocFloat32 calls Default.AllocFloat32.
func AllocFloat32(count uint) unsafe.Pointer { return Default.AllocFloat32(count) }

// FreeFloat32 calls Default.FreeFloat32.
func FreeFloat32(p unsafe.Pointer, count uint) { Default.FreeFloat32(p, count) }

// AllocOpaque calls Default.AllocOpaque.
func AllocOpaque(n uint) unsafe.Pointer { return Default.AllocOpaque(n) }

// FreeOpaque calls Default.FreeOpaque.
func FreeOpaque(p unsafe.Pointer, n uint) { Default.FreeOpaque(p, n) }

// Convert calls Default.Convert.
func Convert(in, out unsafe.Pointer, count uint) { Default.Convert(in, out, count) }
