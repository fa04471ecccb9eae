package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-armory/internal/testutils"
)

func TestScanHeroes(t *testing.T) {
	mr, client := testutils.CreateTestRedisClient(t)

	require.NoError(t, mr.Set("hero:good", `{"id":"good","equipment_tier":2}`))
	require.NoError(t, mr.Set("hero:broken", `{"id":`))
	require.NoError(t, mr.Set("hero:nameless", `{"equipment_tier":1}`))
	require.NoError(t, mr.Set("hero:overtiered", `{"id":"overtiered","equipment_tier":9}`))
	_, err := mr.SAdd("hero:owner:owner-1", "good")
	require.NoError(t, err)

	var out bytes.Buffer
	corrupted, checked, err := scanHeroes(context.Background(), client, &out)
	require.NoError(t, err)

	assert.Equal(t, 4, checked)
	assert.ElementsMatch(t, []string{"hero:broken", "hero:nameless", "hero:overtiered"}, corrupted)
	assert.Contains(t, out.String(), "invalid JSON")
	assert.Contains(t, out.String(), "equipment tier 9 out of range")
}
