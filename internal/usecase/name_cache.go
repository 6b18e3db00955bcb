package usecase

const defaultNameCacheSize = 512

// nameCache is a bounded id -> display-name cache for directory lookups.
// Eviction is FIFO: when full, the oldest inserted entry goes first. The
// pipeline is single-threaded, so there is no locking.
type nameCache struct {
	capacity int
	order    []int64
	names    map[int64]string
}

func newNameCache(capacity int) *nameCache {
	if capacity <= 0 {
		capacity = defaultNameCacheSize
	}
	return &nameCache{
		capacity: capacity,
		names:    make(map[int64]string, capacity),
	}
}

func (c *nameCache) get(id int64) (string, bool) {
	name, ok := c.names[id]
	return name, ok
}

func (c *nameCache) put(id int64, name string) {
	if _, exists := c.names[id]; exists {
		c.names[id] = name
		return
	}
	if len(c.names) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.names, oldest)
	}
	c.names[id] = name
	c.order = append(c.order, id)
}

func (c *nameCache) len() int { return len(c.names) }
