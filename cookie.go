package obstack

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"unsafe"
)

// Reserved destructor-registry indices, present in every arena's dtor
// table before any user type is registered.
const (
	freeMarkerIndex        = uintptr(0)
	arrayOfPrimitivesIndex = uintptr(1)
)

var (
	protectOnce sync.Once

	xorCookie      uintptr
	checksumCookie uintptr
	invalidAddr    uintptr

	freeMarkerXor  uintptr
	arrayMarkerXor uintptr
)

// sentinelByte's address is used as invalidAddr: a value guaranteed not to
// equal any pointer this process hands out through the normal allocator or
// through an obstack, useful only for debugging and comparison.
var sentinelByte byte

func initCookies() {
	protectOnce.Do(func() {
		xorCookie = randomUintptr()
		checksumCookie = randomUintptr()
		invalidAddr = uintptr(unsafe.Pointer(&sentinelByte))
		freeMarkerXor = xorIndex(freeMarkerIndex)
		arrayMarkerXor = xorIndex(arrayOfPrimitivesIndex)
	})
}

func randomUintptr() uintptr {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand.Read only fails if the OS entropy source is
		// unavailable, which is unrecoverable for anything relying on
		// unpredictable cookies.
		panic("obstack: failed to read entropy for pointer protection cookies: " + err.Error())
	}
	return uintptr(binary.LittleEndian.Uint64(buf[:]))
}

// xorIndex obfuscates (or, applied twice, recovers) a destructor-registry
// index using the process-wide XOR cookie.
func xorIndex(i uintptr) uintptr {
	return i ^ xorCookie
}

// makeChecksum computes the weak integrity checksum stored alongside a
// chunk header's prevOff and dtorXor fields.
func makeChecksum(prevOff, dtorXor uintptr) uintptr {
	return prevOff ^ dtorXor ^ checksumCookie
}

// checksumOK reports whether the stored checksum matches prevOff and
// dtorXor. This is a weak check: it catches accidental corruption from
// buffer overruns or stray writes, not a cryptographic guarantee.
func checksumOK(prevOff, dtorXor, checksum uintptr) bool {
	return checksum == makeChecksum(prevOff, dtorXor)
}
