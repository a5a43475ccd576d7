package exec

import (
	"github.com/graindb/graindb/internal/heap"
	"github.com/graindb/graindb/internal/sql/plan"
	"github.com/graindb/graindb/internal/types"
)

// SeqScanExecutor drives a TableIter over the target table heap,
// skipping deleted tuples.
type SeqScanExecutor struct {
	plan *plan.SeqScanPlan
	iter *heap.TableIter
}

func NewSeqScanExecutor(p *plan.SeqScanPlan) *SeqScanExecutor {
	return &SeqScanExecutor{plan: p}
}

func (e *SeqScanExecutor) Init() error {
	it, err := e.plan.Table.Heap.MakeIterator()
	if err != nil {
		return err
	}
	e.iter = it
	return nil
}

func (e *SeqScanExecutor) OutputSchema() *types.Schema { return e.plan.Output }

func (e *SeqScanExecutor) Next() (types.RID, types.Tuple, bool, error) {
	for {
		meta, tup, ok, err := e.iter.Next()
		if err != nil {
			return types.RID{}, types.Tuple{}, false, err
		}
		if !ok {
			return types.RID{}, types.Tuple{}, false, nil
		}
		if meta.IsDeleted {
			continue
		}
		return tup.RID, tup, true, nil
	}
}
