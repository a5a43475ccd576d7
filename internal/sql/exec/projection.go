package exec

import (
	"github.com/graindb/graindb/internal/sql/plan"
	"github.com/graindb/graindb/internal/types"
)

// ProjectionExecutor pulls one child tuple, evaluates each projection
// expression against the child schema, and forwards the child's RID.
type ProjectionExecutor struct {
	plan  *plan.ProjectionPlan
	child Executor
}

func NewProjectionExecutor(p *plan.ProjectionPlan, child Executor) *ProjectionExecutor {
	return &ProjectionExecutor{plan: p, child: child}
}

func (e *ProjectionExecutor) Init() error { return e.child.Init() }

func (e *ProjectionExecutor) OutputSchema() *types.Schema { return e.plan.Output }

func (e *ProjectionExecutor) Next() (types.RID, types.Tuple, bool, error) {
	rid, childTup, ok, err := e.child.Next()
	if err != nil || !ok {
		return types.RID{}, types.Tuple{}, false, err
	}
	childSchema := e.child.OutputSchema()
	values := make([]types.Value, len(e.plan.Exprs))
	for i, expr := range e.plan.Exprs {
		values[i] = expr.Evaluate(childTup, childSchema)
	}
	tup := types.BuildTuple(values, e.plan.Output)
	tup.RID = rid
	return rid, tup, true, nil
}
