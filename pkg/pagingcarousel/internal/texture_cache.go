package internal

import (
	"slices"

	"github.com/veandco/go-sdl2/sdl"
)

// TextureRole names the part of the navigation bar a texture draws.
type TextureRole uint8

const (
	TitleTexture TextureRole = iota
	BadgeLabelTexture
	BadgePillTexture
	IconTexture
)

// Every navigation item draws at most a title, a badge label and a pill.
const texturesPerItem = 3

// TextureKey identifies a texture by what it depicts. Text holds the string
// for titles and badge labels and the source identity for icons; W and H
// are set for textures rasterized at a fixed size.
type TextureKey struct {
	Role  TextureRole
	Text  string
	W, H  int
	Color sdl.Color
}

// TextureCapacity sizes a cache for a bar of items navigation items plus its
// accessory. Two generations fit so that a badge or title update does not
// evict the textures still on screen.
func TextureCapacity(items int) int {
	return 2*max(items, 1)*texturesPerItem + 1
}

// TextureCache holds the navigation bar's textures, evicting the least
// recently drawn once full. Evicted and replaced textures are destroyed.
type TextureCache struct {
	lru lru[TextureKey, *sdl.Texture]
}

// NewTextureCache returns a cache sized for items navigation items.
func NewTextureCache(items int) *TextureCache {
	return &TextureCache{lru: newLRU[TextureKey](TextureCapacity(items), destroyTexture)}
}

func destroyTexture(texture *sdl.Texture) {
	if texture != nil {
		_ = texture.Destroy()
	}
}

// GetOrCreate returns the cached texture for key, creating it with create on
// a miss. Failed creations are not cached.
func (c *TextureCache) GetOrCreate(key TextureKey, create func() (*sdl.Texture, error)) (*sdl.Texture, error) {
	if texture, ok := c.lru.get(key); ok {
		return texture, nil
	}
	texture, err := create()
	if err != nil {
		return nil, err
	}
	c.lru.set(key, texture)
	return texture, nil
}

// DropRoles destroys every texture drawn for one of roles.
func (c *TextureCache) DropRoles(roles ...TextureRole) {
	c.lru.dropWhere(func(key TextureKey) bool { return slices.Contains(roles, key.Role) })
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int { return c.lru.len() }

// Destroy frees every cached texture. The cache stays usable.
func (c *TextureCache) Destroy() { c.lru.clear() }

type lru[K comparable, V any] struct {
	values  map[K]V
	order   []K // least recently used first
	maxSize int
	release func(V)
}

func newLRU[K comparable, V any](maxSize int, release func(V)) lru[K, V] {
	maxSize = max(maxSize, 1)
	return lru[K, V]{
		values:  make(map[K]V, maxSize),
		order:   make([]K, 0, maxSize),
		maxSize: maxSize,
		release: release,
	}
}

func (l *lru[K, V]) get(key K) (V, bool) {
	v, ok := l.values[key]
	if ok {
		l.touch(key)
	}
	return v, ok
}

func (l *lru[K, V]) set(key K, v V) {
	if _, ok := l.values[key]; ok {
		l.release(l.values[key])
		l.values[key] = v
		l.touch(key)
		return
	}
	if len(l.order) >= l.maxSize {
		oldest := l.order[0]
		l.order = l.order[1:]
		l.release(l.values[oldest])
		delete(l.values, oldest)
	}
	l.values[key] = v
	l.order = append(l.order, key)
}

func (l *lru[K, V]) touch(key K) {
	if i := slices.Index(l.order, key); i >= 0 {
		l.order = append(slices.Delete(l.order, i, i+1), key)
	}
}

func (l *lru[K, V]) dropWhere(match func(K) bool) {
	l.order = slices.DeleteFunc(l.order, func(key K) bool {
		if !match(key) {
			return false
		}
		l.release(l.values[key])
		delete(l.values, key)
		return true
	})
}

func (l *lru[K, V]) len() int { return len(l.order) }

func (l *lru[K, V]) clear() {
	for _, key := range l.order {
		l.release(l.values[key])
	}
	clear(l.values)
	l.order = l.order[:0]
}
