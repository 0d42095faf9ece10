package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// KeyedMutex hands out one mutex per key and forgets keys nobody holds.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*keyedLock)}
}

// Lock blocks until key is free and returns its unlock function.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// CartLockMiddleware runs the requests of one cart one at a time, so each
// request sees the state the previous one persisted.
func CartLockMiddleware(locks *KeyedMutex) gin.HandlerFunc {
	return func(c *gin.Context) {
		unlock := locks.Lock(CartKey(c))
		defer unlock()
		c.Next()
	}
}
