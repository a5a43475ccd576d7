// Package engine wires the storage stack, buffer pool, catalog, and SQL
// frontend/binder/planner/executors into one Database, driving the data
// flow: SQL text -> AST (frontend) -> Bound tree (bind) -> Plan tree
// (plan) -> Executor tree (exec) -> Tuples.
package engine

import (
	"fmt"

	"github.com/graindb/graindb/internal/buffer"
	"github.com/graindb/graindb/internal/catalog"
	"github.com/graindb/graindb/internal/heap"
	"github.com/graindb/graindb/internal/lock"
	"github.com/graindb/graindb/internal/optimizer"
	"github.com/graindb/graindb/internal/sql/bind"
	"github.com/graindb/graindb/internal/sql/exec"
	"github.com/graindb/graindb/internal/sql/frontend"
	"github.com/graindb/graindb/internal/sql/plan"
	"github.com/graindb/graindb/internal/storage"
	"github.com/graindb/graindb/internal/txn"
	"github.com/graindb/graindb/internal/types"
	"github.com/graindb/graindb/internal/wal"
)

// Database is the top-level handle: one DiskStore, one Scheduler, one
// buffer Pool, one Catalog, shared by every table.
type Database struct {
	disk  *storage.DiskStore
	sched *storage.Scheduler
	bp    *buffer.Pool
	cat   *catalog.Catalog
	lockm *lock.Manager
	wal   *wal.Manager // nil unless explicitly opened with WAL enabled
}

// Options configures Open.
type Options struct {
	PoolSize int
	K        int // LRU-K history depth
	WALDir   string // "" disables WAL wiring
}

// Open opens (creating if absent) the database file at path. It never
// invokes wal.Manager.Recover — durable redo/undo recovery is outside
// core scope.
func Open(path string, opts Options) (*Database, error) {
	if opts.PoolSize <= 0 {
		opts.PoolSize = 64
	}
	if opts.K <= 0 {
		opts.K = 2
	}

	disk, err := storage.OpenDiskStore(path)
	if err != nil {
		return nil, err
	}
	sched := storage.NewScheduler(disk)

	var walMgr *wal.Manager
	if opts.WALDir != "" {
		walMgr, err = wal.Open(opts.WALDir)
		if err != nil {
			return nil, fmt.Errorf("engine: open wal: %w", err)
		}
	}

	bp := buffer.NewPool(opts.PoolSize, opts.K, sched, walMgr)

	return &Database{
		disk:  disk,
		sched: sched,
		bp:    bp,
		cat:   catalog.New(),
		lockm: lock.NewManager(),
		wal:   walMgr,
	}, nil
}

// Close flushes every dirty page and shuts down the scheduler.
func (db *Database) Close() error {
	if err := db.bp.FlushAll(); err != nil {
		return err
	}
	db.sched.Shutdown()
	if db.wal != nil {
		_ = db.wal.Close()
	}
	return db.disk.Close()
}

// Catalog exposes the shared catalog, e.g. for tests that need to peek
// at table metadata.
func (db *Database) Catalog() *catalog.Catalog { return db.cat }

// Result is one executed statement's output.
type Result struct {
	Schema *types.Schema
	Tuples []types.Tuple
}

// ExecuteSQL parses, binds, plans, optimizes, and executes every
// statement in sql, returning one Result per statement.
func (db *Database) ExecuteSQL(sql string) ([]Result, error) {
	stmts, err := frontend.Parse(sql)
	if err != nil {
		return nil, err
	}

	binder := bind.New(db.cat)
	results := make([]Result, 0, len(stmts))

	for _, stmt := range stmts {
		bound, err := binder.Bind(stmt)
		if err != nil {
			return nil, err
		}

		if create, ok := bound.(bind.Create); ok {
			if err := db.execCreateTable(create); err != nil {
				return nil, err
			}
			results = append(results, Result{})
			continue
		}

		p, err := plan.Build(bound)
		if err != nil {
			return nil, err
		}
		p, err = optimizer.Optimize(p)
		if err != nil {
			return nil, err
		}

		ctx := &exec.Context{Txn: txn.New(), Lock: db.lockm}
		root, err := exec.Build(p, ctx)
		if err != nil {
			return nil, err
		}
		tuples, err := exec.Run(root)
		if err != nil {
			return nil, err
		}
		results = append(results, Result{Schema: root.OutputSchema(), Tuples: tuples})
	}
	return results, nil
}

func (db *Database) execCreateTable(c bind.Create) error {
	schema := types.NewSchema(c.Columns)
	h, err := heap.NewTableHeap(db.bp)
	if err != nil {
		return err
	}
	_, err = db.cat.CreateTable(c.Table, schema, h)
	return err
}
