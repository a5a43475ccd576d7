package exec

import (
	"github.com/graindb/graindb/internal/heap"
	"github.com/graindb/graindb/internal/sql/plan"
	"github.com/graindb/graindb/internal/txn"
	"github.com/graindb/graindb/internal/types"
)

// InsertExecutor drains its child once, inserting each tuple into the
// target table heap with metadata (invalid_txn, invalid_txn,
// is_deleted=false) — this core does no MVCC, so every written tuple
// carries the stub invalid transaction identity regardless of the
// executing statement's own transaction. After draining, it emits
// exactly one tuple (inserted_count) and terminates.
type InsertExecutor struct {
	plan  *plan.InsertPlan
	child Executor
	ctx   *Context
	done  bool
}

func NewInsertExecutor(p *plan.InsertPlan, child Executor, ctx *Context) *InsertExecutor {
	return &InsertExecutor{plan: p, child: child, ctx: ctx}
}

func (e *InsertExecutor) Init() error { e.done = false; return e.child.Init() }

func (e *InsertExecutor) OutputSchema() *types.Schema { return e.plan.Output }

func (e *InsertExecutor) Next() (types.RID, types.Tuple, bool, error) {
	if e.done {
		return types.RID{}, types.Tuple{}, false, nil
	}
	e.done = true

	meta := heap.TupleMeta{
		InsertTxn: txn.Invalid().Seq(),
		DeleteTxn: txn.Invalid().Seq(),
		IsDeleted: false,
	}

	count := int32(0)
	for {
		_, tup, ok, err := e.child.Next()
		if err != nil {
			return types.RID{}, types.Tuple{}, false, err
		}
		if !ok {
			break
		}
		rid, err := e.plan.Table.Heap.InsertTuple(meta, tup.Data)
		if err != nil {
			return types.RID{}, types.Tuple{}, false, err
		}
		if e.ctx != nil && e.ctx.Lock != nil {
			_ = e.ctx.Lock.LockExclusive(e.ctx.Txn, rid.PageID, rid.Slot)
		}
		count++
	}

	out := types.BuildTuple([]types.Value{types.NewInteger(count)}, e.plan.Output)
	return types.RID{}, out, true, nil
}
