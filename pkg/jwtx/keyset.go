package jwtx

import (
	"context"
	"errors"
	"sync"
)

var ErrUnknownKID = errors.New("jwtx: unknown kid")

// KeyProvider looks up a verification key by its kid.
type KeyProvider interface {
	Key(ctx context.Context, kid string) (any, error)
}

// KeySet is a static, concurrency safe set of RSA public keys.
type KeySet struct {
	mu   sync.RWMutex
	keys map[string]any
}

func NewKeySet() *KeySet {
	return &KeySet{keys: make(map[string]any)}
}

// Replace swaps the whole set for the keys in jwks. Keys that fail to decode
// are reported and the previous set is kept.
func (k *KeySet) Replace(jwks JWKS) error {
	next := make(map[string]any, len(jwks.Keys))
	for _, j := range jwks.Keys {
		pub, err := j.RSAPublicKey()
		if err != nil {
			return err
		}
		next[j.Kid] = pub
	}

	k.mu.Lock()
	k.keys = next
	k.mu.Unlock()
	return nil
}

func (k *KeySet) Key(_ context.Context, kid string) (any, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if pub, ok := k.keys[kid]; ok {
		return pub, nil
	}
	return nil, ErrUnknownKID
}

func (k *KeySet) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.keys)
}
