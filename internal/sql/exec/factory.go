package exec

import (
	"github.com/graindb/graindb/internal/sql/plan"
)

// Build constructs an executor tree from a plan tree,
// data flow ("Plan tree (Planner) -> Executor tree (Factory)").
func Build(p plan.Plan, ctx *Context) (Executor, error) {
	switch node := p.(type) {
	case *plan.ValuesPlan:
		return NewValuesExecutor(node), nil
	case *plan.SeqScanPlan:
		return NewSeqScanExecutor(node), nil
	case *plan.FilterPlan:
		child, err := Build(node.Child, ctx)
		if err != nil {
			return nil, err
		}
		return NewFilterExecutor(node, child), nil
	case *plan.ProjectionPlan:
		child, err := Build(node.Child, ctx)
		if err != nil {
			return nil, err
		}
		return NewProjectionExecutor(node, child), nil
	case *plan.InsertPlan:
		child, err := Build(node.Child, ctx)
		if err != nil {
			return nil, err
		}
		return NewInsertExecutor(node, child, ctx), nil
	default:
		return nil, errorf("unsupported plan node %T", p)
	}
}
