// Package cache implementa la caché de vistas en memoria del dashboard.
// Las respuestas renderizadas se guardan bajo la ruta de vista que las
// produjo; el pipeline de mutación señala qué rutas revalidar y los
// handlers las invalidan aquí por prefijo.
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	value   []byte
	expires time.Time
}

// ViewCache caché clave→bytes con TTL e invalidación por prefijo de ruta.
// Seguro para uso concurrente.
type ViewCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

// NewViewCache construye la caché con el TTL por defecto para cada entrada.
func NewViewCache(ttl time.Duration) *ViewCache {
	return &ViewCache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Get devuelve el valor cacheado bajo key, o (nil, false) si no existe o expiró.
// Las entradas expiradas se eliminan al leerlas.
func (c *ViewCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expires) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set guarda value bajo key con el TTL por defecto.
func (c *ViewCache) Set(key string, value []byte) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Invalidate elimina toda entrada cuya clave empiece por path.
// Invalidar "/dashboard" barre también las vistas anidadas
// ("/dashboard/invoices?query=...&page=2", etc.). Devuelve cuántas
// entradas se eliminaron.
func (c *ViewCache) Invalidate(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, path) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len devuelve el número de entradas vivas o expiradas aún no purgadas.
func (c *ViewCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
