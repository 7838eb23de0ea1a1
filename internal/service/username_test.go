package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsernameBase(t *testing.T) {
	assert.Equal(t, "maria.gonzales", UsernameBase("Maria", "Gonzales"))
	assert.Equal(t, "juan.perez", UsernameBase("Juan Carlos", "Perez Gomez"))
	assert.Equal(t, "ma.quispe", UsernameBase("M.a", "Quispe"))
	assert.Equal(t, ".rojas", UsernameBase("", "Rojas"))
}

func TestAllocateUsername(t *testing.T) {
	t.Run("no collision keeps the base", func(t *testing.T) {
		got := AllocateUsername("juan.perez", nil)
		assert.Equal(t, "juan.perez", got)
	})

	t.Run("unrelated handles are ignored", func(t *testing.T) {
		got := AllocateUsername("juan.perez", []string{"maria.perez", "juan.quispe"})
		assert.Equal(t, "juan.perez", got)
	})

	t.Run("exact collision appends .1", func(t *testing.T) {
		got := AllocateUsername("juan.perez", []string{"juan.perez"})
		assert.Equal(t, "juan.perez.1", got)
	})

	t.Run("suffixed collisions bump to the next free integer", func(t *testing.T) {
		got := AllocateUsername("juan.perez", []string{"juan.perez", "juan.perez.1"})
		assert.Equal(t, "juan.perez.2", got)

		got = AllocateUsername("juan.perez", []string{"juan.perez", "juan.perez.1", "juan.perez.2"})
		assert.Equal(t, "juan.perez.3", got)
	})

	t.Run("non-numeric suffixes are skipped", func(t *testing.T) {
		got := AllocateUsername("juan.perez", []string{"juan.perez.gomez"})
		assert.Equal(t, "juan.perez", got)
	})
}
