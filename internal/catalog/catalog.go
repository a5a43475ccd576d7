// Package catalog is the process-wide shared mapping from table names to
// table metadata: an RWMutex-guarded value handed to the
// binder/planner/executors, never borrowed across statement boundaries.
package catalog

import (
	"fmt"
	"sync"

	"github.com/graindb/graindb/internal/heap"
	"github.com/graindb/graindb/internal/types"
)

// OID is a table object identifier. The generator never reuses an oid.
type OID uint32

// TableInfo is everything the catalog knows about one table.
type TableInfo struct {
	OID    OID
	Name   string
	Schema *types.Schema
	Heap   *heap.TableHeap
}

// Catalog maps table_name -> table_oid and table_oid -> TableInfo.
type Catalog struct {
	mu      sync.RWMutex
	nextOID OID
	byName  map[string]OID
	byOID   map[OID]*TableInfo
}

func New() *Catalog {
	return &Catalog{
		byName: make(map[string]OID),
		byOID:  make(map[OID]*TableInfo),
	}
}

// CreateTable registers a new table. Fails if the name already exists.
func (c *Catalog) CreateTable(name string, schema *types.Schema, h *heap.TableHeap) (*TableInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.byName[name]; exists {
		return nil, fmt.Errorf("catalog: table %q already exists", name)
	}
	oid := c.nextOID
	c.nextOID++
	info := &TableInfo{OID: oid, Name: name, Schema: schema, Heap: h}
	c.byName[name] = oid
	c.byOID[oid] = info
	return info, nil
}

// GetTableByName resolves a table by name.
func (c *Catalog) GetTableByName(name string) (*TableInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	oid, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return c.byOID[oid], true
}

// GetTable resolves a table by oid.
func (c *Catalog) GetTable(oid OID) (*TableInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.byOID[oid]
	return info, ok
}

// TableNames returns every registered table name (unordered).
func (c *Catalog) TableNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.byName))
	for n := range c.byName {
		names = append(names, n)
	}
	return names
}
