// Package cache holds large read-only objects that are expensive to load,
// such as word lists and letter distributions. A long-lived process that
// embeds the finder (for example a word-game server backend) should not have
// to re-read these from disk on every search.
package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/rackfinder/config"
)

type cache struct {
	sync.Mutex
	objects map[string]any
}

// A LoadFunc materializes the object for a key that is not yet cached.
type LoadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is our global object cache, of course.
var GlobalObjectCache *cache

func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{objects: make(map[string]any)}
}

func (c *cache) get(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := loadFunc(cfg, key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

func (c *cache) remove(key string) {
	c.Lock()
	defer c.Unlock()
	delete(c.objects, key)
}

func Load(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	if GlobalObjectCache == nil {
		CreateGlobalObjectCache()
	}
	return GlobalObjectCache.get(cfg, key, loadFunc)
}

// Evict drops a cached object; tests use this to force a reload.
func Evict(key string) {
	if GlobalObjectCache == nil {
		return
	}
	GlobalObjectCache.remove(key)
}
