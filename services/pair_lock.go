package services

import (
	"hash/fnv"
	"sync"
)

// pairLocks serializes match formation per canonical pair so that two
// near-simultaneous EnsureMatch calls for the same pair cannot both observe
// "no existing match". Striped so the lock table stays bounded.
type pairLocks struct {
	stripes [64]sync.Mutex
}

// Lock acquires the stripe for the given pair key and returns its unlock func.
func (p *pairLocks) Lock(pairKey string) func() {
	h := fnv.New32a()
	h.Write([]byte(pairKey))
	stripe := &p.stripes[h.Sum32()%uint32(len(p.stripes))]
	stripe.Lock()
	return stripe.Unlock
}
