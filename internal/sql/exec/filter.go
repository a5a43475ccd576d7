package exec

import (
	"github.com/graindb/graindb/internal/sql/plan"
	"github.com/graindb/graindb/internal/types"
)

// FilterExecutor pulls child tuples, yielding only those for which the
// predicate is boolean-true and not null.
type FilterExecutor struct {
	plan  *plan.FilterPlan
	child Executor
}

func NewFilterExecutor(p *plan.FilterPlan, child Executor) *FilterExecutor {
	return &FilterExecutor{plan: p, child: child}
}

func (e *FilterExecutor) Init() error { return e.child.Init() }

func (e *FilterExecutor) OutputSchema() *types.Schema { return e.plan.Output }

func (e *FilterExecutor) Next() (types.RID, types.Tuple, bool, error) {
	childSchema := e.child.OutputSchema()
	for {
		rid, tup, ok, err := e.child.Next()
		if err != nil || !ok {
			return types.RID{}, types.Tuple{}, false, err
		}
		result := e.plan.Predicate.Evaluate(tup, childSchema)
		if result.Kind() == types.KindBoolean && !result.IsNull() && result.AsBoolean() {
			return rid, tup, true, nil
		}
	}
}
