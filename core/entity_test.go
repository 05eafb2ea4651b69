package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityPacking(t *testing.T) {
	e := NewEntity(42, 7)
	assert.Equal(t, uint32(42), e.Index())
	assert.Equal(t, uint32(7), e.Generation())
	assert.False(t, e.IsZero())
	assert.Equal(t, "42v7", e.String())

	assert.True(t, NoEntity.IsZero())
	assert.NotEqual(t, NewEntity(42, 7), NewEntity(42, 8), "same slot with bumped generation must differ")
}

func TestSoundTypeString(t *testing.T) {
	assert.Equal(t, "player_shoot", SoundPlayerShoot.String())
	assert.Equal(t, "unknown", SoundTypeCount.String())
	for s := SoundType(0); s < SoundTypeCount; s++ {
		assert.NotEmpty(t, s.String(), "sound %d has no name", s)
	}
}
