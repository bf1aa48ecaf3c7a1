package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCache_SetYGet(t *testing.T) {
	c := NewViewCache(time.Minute)
	c.Set("/dashboard/summary", []byte(`{"ok":true}`))

	got, ok := c.Get("/dashboard/summary")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"ok":true}`), got)

	_, ok = c.Get("/dashboard/otra")
	assert.False(t, ok, "clave no guardada no debe existir")
}

func TestViewCache_EntradaExpiraConTTL(t *testing.T) {
	c := NewViewCache(time.Millisecond)
	c.Set("/dashboard/summary", []byte("x"))

	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get("/dashboard/summary")
	assert.False(t, ok, "la entrada debe expirar pasado el TTL")
	assert.Equal(t, 0, c.Len(), "la lectura de una entrada expirada la purga")
}

func TestViewCache_InvalidatePorPrefijo(t *testing.T) {
	c := NewViewCache(time.Minute)
	c.Set("/dashboard/invoices?query=&page=1", []byte("a"))
	c.Set("/dashboard/invoices?query=lee&page=2", []byte("b"))
	c.Set("/dashboard/summary", []byte("c"))
	c.Set("/login", []byte("d"))

	removed := c.Invalidate("/dashboard/invoices")
	assert.Equal(t, 2, removed, "solo las vistas bajo el prefijo se invalidan")

	_, ok := c.Get("/dashboard/summary")
	assert.True(t, ok, "las vistas fuera del prefijo sobreviven")
	_, ok = c.Get("/login")
	assert.True(t, ok)

	// Invalidar la raíz del dashboard barre lo anidado.
	removed = c.Invalidate("/dashboard")
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, c.Len())
}
