package exec

import (
	"github.com/graindb/graindb/internal/sql/plan"
	"github.com/graindb/graindb/internal/types"
)

// ValuesExecutor iterates the rows of a ValuesPlan, evaluating each
// row's expressions against a null tuple/schema.
type ValuesExecutor struct {
	plan *plan.ValuesPlan
	pos  int
}

func NewValuesExecutor(p *plan.ValuesPlan) *ValuesExecutor {
	return &ValuesExecutor{plan: p}
}

func (e *ValuesExecutor) Init() error { e.pos = 0; return nil }

func (e *ValuesExecutor) OutputSchema() *types.Schema { return e.plan.Output }

func (e *ValuesExecutor) Next() (types.RID, types.Tuple, bool, error) {
	if e.pos >= len(e.plan.Rows) {
		return types.RID{}, types.Tuple{}, false, nil
	}
	row := e.plan.Rows[e.pos]
	e.pos++

	values := make([]types.Value, len(row))
	for i, expr := range row {
		values[i] = expr.Evaluate(types.Tuple{}, nil)
	}
	tup := types.BuildTuple(values, e.plan.Output)
	return types.RID{}, tup, true, nil
}
