package site

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeframlou/bunni-docs/internal/domain"
)

// Holder keeps the current site configuration. Readers never block;
// a reload swaps the whole value.
type Holder struct {
	current    atomic.Pointer[domain.SiteConfig]
	mu         sync.RWMutex
	lastReload time.Time
	source     string
}

// NewHolder creates a holder seeded with cfg.
func NewHolder(cfg domain.SiteConfig) *Holder {
	h := &Holder{source: "defaults"}
	h.current.Store(&cfg)
	return h
}

// Get returns the current configuration.
func (h *Holder) Get() domain.SiteConfig {
	return *h.current.Load()
}

// Set replaces the configuration and reports whether it changed.
func (h *Holder) Set(cfg domain.SiteConfig, source string) bool {
	old := h.current.Swap(&cfg)

	h.mu.Lock()
	h.lastReload = time.Now()
	h.source = source
	h.mu.Unlock()

	return *old != cfg
}

// LastReload returns when Set was last called, zero if never.
func (h *Holder) LastReload() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastReload
}

// Source describes where the current configuration came from.
func (h *Holder) Source() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.source
}
