//go:build js && wasm

package main

import (
	"syscall/js"
	"unsafe"

	"github.com/cwbudde/algo-pcm/abi"
	"github.com/cwbudde/algo-pcm/internal/hostlog"
)

var funcs []js.Func

func main() {
	hostlog.Init()

	api := js.Global().Get("Object").New()

	api.Set("allocInt16", export(func(args []js.Value) any {
		if len(args) < 1 {
			return 0
		}
		return offset(abi.AllocInt16(uint(args[0].Int())))
	}))

	api.Set("freeInt16", export(func(args []js.Value) any {
		if len(args) < 2 {
			return js.Null()
		}
		abi.FreeInt16(ptr(args[0]), uint(args[1].Int()))
		return js.Null()
	}))

	api.Set("allocFloat32", export(func(args []js.Value) any {
		if len(args) < 1 {
			return 0
		}
		return offset(abi.AllocFloat32(uint(args[0].Int())))
	}))

	api.Set("freeFloat32", export(func(args []js.Value) any {
		if len(args) < 2 {
			return js.Null()
		}
		abi.FreeFloat32(ptr(args[0]), uint(args[1].Int()))
		return js.Null()
	}))

	api.Set("allocOpaque", export(func(args []js.Value) any {
		if len(args) < 1 {
			return 0
		}
		return offset(abi.AllocOpaque(uint(args[0].Int())))
	}))

	api.Set("freeOpaque", export(func(args []js.Value) any {
		if len(args) < 2 {
			return js.Null()
		}
		abi.FreeOpaque(ptr(args[0]), uint(args[1].Int()))
		return js.Null()
	}))

	api.Set("convert", export(func(args []js.Value) any {
		if len(args) < 3 {
			return js.Null()
		}
		abi.Convert(ptr(args[0]), ptr(args[1]), uint(args[2].Int()))
		return js.Null()
	}))

	js.Global().Set("AlgoPCM", api)
	select {}
}

// ptr and offset convert between JS numbers and pointers into wasm memory.
func ptr(v js.Value) unsafe.Pointer { return unsafe.Pointer(uintptr(v.Int())) }

func offset(p unsafe.Pointer) int { return int(uintptr(p)) }

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
