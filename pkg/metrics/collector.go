package metrics

import (
	"sync"
	"time"

	"github.com/cuemby/cookshow/pkg/types"
)

// DefaultCollectInterval is how often collection sizes are refreshed
const DefaultCollectInterval = 15 * time.Second

// Source is the read side of the store the collector samples
type Source interface {
	ListChefs() ([]*types.Chef, error)
	ListViewers() ([]*types.Viewer, error)
	ListParticipants() ([]*types.Participant, error)
	ListRecipes() ([]*types.Recipe, error)
}

// Collector periodically publishes collection sizes to EntitiesTotal
type Collector struct {
	source   Source
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewCollector creates a collector; a non-positive interval uses the default
func NewCollector(source Source, interval time.Duration) *Collector {
	if interval <= 0 {
		interval = DefaultCollectInterval
	}
	return &Collector{
		source:   source,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins collecting metrics
func (c *Collector) Start() {
	ticker := time.NewTicker(c.interval)
	go func() {
		// Collect immediately on start
		c.Collect()

		for {
			select {
			case <-ticker.C:
				c.Collect()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the collector; calling it twice is safe
func (c *Collector) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Collect samples every collection once. A failing listing leaves the
// previous gauge value in place.
func (c *Collector) Collect() {
	if chefs, err := c.source.ListChefs(); err == nil {
		EntitiesTotal.WithLabelValues("chefs").Set(float64(len(chefs)))
	}
	if viewers, err := c.source.ListViewers(); err == nil {
		EntitiesTotal.WithLabelValues("viewers").Set(float64(len(viewers)))
	}
	if participants, err := c.source.ListParticipants(); err == nil {
		EntitiesTotal.WithLabelValues("participants").Set(float64(len(participants)))
	}
	if recipes, err := c.source.ListRecipes(); err == nil {
		EntitiesTotal.WithLabelValues("recipes").Set(float64(len(recipes)))
	}
}
