package keylock_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-armory/internal/pkg/keylock"
)

func TestUnlockReleasesKey(t *testing.T) {
	m := keylock.New()

	unlock := m.Lock("hero_1")
	assert.Equal(t, 1, m.Len())

	unlock()
	assert.Equal(t, 0, m.Len())

	unlock()
	assert.Equal(t, 0, m.Len(), "a second unlock is a no-op")
}

func TestKeysAreReleasedAfterContention(t *testing.T) {
	m := keylock.New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			unlock := m.Lock(fmt.Sprintf("hero_%d", i%3))
			unlock()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, m.Len())
}

func TestLockSerializesOneKey(t *testing.T) {
	m := keylock.New()

	const workers = 50
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := m.Lock("hero_1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestDifferentKeysDoNotBlock(t *testing.T) {
	m := keylock.New()

	unlock := m.Lock("hero_1")
	defer unlock()

	done := make(chan struct{})
	go func() {
		release := m.Lock("hero_2")
		release()
		close(done)
	}()
	<-done
}
