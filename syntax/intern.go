package syntax

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Context is a canonical-instance registry, partitioned by formalism:
// for each Logic it maps canonical keys to the single living instance
// with that key. Interning keeps exactly one instance alive per
// distinct formula until the context is discarded.
//
// The reference semantics are single-threaded, but intern must be a
// single check-then-insert critical section so that concurrent first
// constructions of equal formulas still converge to one instance; the
// mutex provides that.
type Context struct {
	id         uuid.UUID
	mu         sync.Mutex
	partitions map[Logic]map[string]Formula
}

// NewContext creates an empty registry with a fresh identity.
func NewContext() *Context {
	return &Context{
		id:         uuid.New(),
		partitions: make(map[Logic]map[string]Formula),
	}
}

// ID returns the registry's identity. Two contexts never share an ID,
// which lets tests and diagnostics tell registries apart after a reset.
func (c *Context) ID() uuid.UUID { return c.id }

// Intern returns the canonical instance for candidate: candidate itself
// on first occurrence, the previously cached structurally-equal instance
// otherwise. First occurrences are registered as a side effect.
func (c *Context) Intern(candidate Formula) Formula {
	c.mu.Lock()
	defer c.mu.Unlock()

	partition := c.partitions[candidate.Logic()]
	if partition == nil {
		partition = make(map[string]Formula)
		c.partitions[candidate.Logic()] = partition
	}
	if cached, ok := partition[candidate.Key()]; ok {
		return cached
	}
	partition[candidate.Key()] = candidate
	return candidate
}

// Lookup returns the cached instance for a canonical key, if any.
func (c *Context) Lookup(l Logic, key string) (Formula, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, ok := c.partitions[l][key]
	return f, ok
}

// Len returns the number of distinct formulas cached for a formalism.
func (c *Context) Len(l Logic) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.partitions[l])
}

// Formulas returns the cached formulas for a formalism, in no
// particular order. Introspection hook for tests and diagnostics.
func (c *Context) Formulas(l Logic) []Formula {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Formula, 0, len(c.partitions[l]))
	for _, f := range c.partitions[l] {
		out = append(out, f)
	}
	return out
}

// defaultContext is the process-wide registry used by the package-level
// constructors.
var defaultContext atomic.Pointer[Context]

func init() {
	defaultContext.Store(NewContext())
}

// CacheContext returns the live process-wide registry.
func CacheContext() *Context {
	return defaultContext.Load()
}

// ResetCache replaces the process-wide registry with a fresh one.
// Formulas built before the reset are not mutated, but identity
// guarantees between them and subsequently built formulas no longer
// hold. Intended between independent test cases or parse sessions to
// bound growth and cross-run interference.
func ResetCache() {
	defaultContext.Store(NewContext())
}

func intern(f Formula) Formula {
	return CacheContext().Intern(f)
}
