package format

import "sync"

var (
	regMu    sync.RWMutex
	registry = map[uint8]Decoder{}
)

// Register stores a decoder keyed by its format version. The set of formats
// is fixed by the Ruuvi sensor protocol specification; registration happens
// from each format package's init.
func Register(dec Decoder) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[dec.Version()] = dec
}

// Lookup returns the decoder for the given format version tag.
func Lookup(version uint8) (Decoder, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	dec, ok := registry[version]
	return dec, ok
}
