package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-armory/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	gen := idgen.NewSequential("hero")
	assert.Equal(t, "hero_1", gen.Generate())
	assert.Equal(t, "hero_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestSequentialConcurrent(t *testing.T) {
	gen := idgen.NewSequential("hero")

	var mu sync.Mutex
	seen := map[string]bool{}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := gen.Generate()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 50)
}

func TestUUID(t *testing.T) {
	id := idgen.NewUUID("hero").Generate()
	require.True(t, strings.HasPrefix(id, "hero_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "hero_"))
	assert.NoError(t, err)

	bare := idgen.NewUUID("").Generate()
	_, err = uuid.Parse(bare)
	assert.NoError(t, err)
}
