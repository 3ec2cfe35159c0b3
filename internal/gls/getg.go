package gls

// getg is like the compiler intrinsic runtime.getg: it retrieves the address
// of the runtime.g object of the calling goroutine. Implemented in assembly
// for each supported architecture.
//
// https://github.com/golang/go/blob/a2647f08f0c4e540540a7ae1b9ba7e668e6fed80/src/runtime/HACKING.md?plain=1#L44-L54
func getg() uintptr
