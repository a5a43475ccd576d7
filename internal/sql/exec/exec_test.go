package exec

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graindb/graindb/internal/buffer"
	"github.com/graindb/graindb/internal/catalog"
	"github.com/graindb/graindb/internal/heap"
	"github.com/graindb/graindb/internal/lock"
	"github.com/graindb/graindb/internal/sql/plan"
	"github.com/graindb/graindb/internal/storage"
	"github.com/graindb/graindb/internal/txn"
	"github.com/graindb/graindb/internal/types"
)

func newTestPool(t *testing.T) *buffer.Pool {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.data")
	disk, err := storage.OpenDiskStore(path)
	require.NoError(t, err)
	sched := storage.NewScheduler(disk)
	t.Cleanup(func() {
		sched.Shutdown()
		disk.Close()
	})
	return buffer.NewPool(16, 2, sched, nil)
}

func TestValuesThenProjection(t *testing.T) {
	rowSchema := types.NewSchema([]types.Column{types.NewIntegerColumn("a")})
	outSchema := types.NewSchema([]types.Column{types.NewIntegerColumn("a")})

	valuesPlan := &plan.ValuesPlan{
		Rows: [][]plan.Expr{
			{plan.ConstantExpr{Value: types.NewInteger(1)}},
			{plan.ConstantExpr{Value: types.NewInteger(2)}},
		},
		Output: rowSchema,
	}
	projPlan := &plan.ProjectionPlan{
		Exprs:  []plan.Expr{plan.ColumnValueExpr{ColIdx: 0, Kind: types.KindInteger}},
		Output: outSchema,
	}
	values := NewValuesExecutor(valuesPlan)
	proj := NewProjectionExecutor(projPlan, values)

	tuples, err := Run(proj)
	require.NoError(t, err)
	require.Len(t, tuples, 2)
	require.Equal(t, int32(1), tuples[0].GetValue(outSchema, 0).AsInteger())
	require.Equal(t, int32(2), tuples[1].GetValue(outSchema, 0).AsInteger())
}

func TestFilterExcludesNonMatching(t *testing.T) {
	rowSchema := types.NewSchema([]types.Column{types.NewIntegerColumn("a")})
	valuesPlan := &plan.ValuesPlan{
		Rows: [][]plan.Expr{
			{plan.ConstantExpr{Value: types.NewInteger(1)}},
			{plan.ConstantExpr{Value: types.NewInteger(2)}},
		},
		Output: rowSchema,
	}
	filterPlan := &plan.FilterPlan{
		Predicate: plan.CompareExpr{
			Cmp:   plan.CmpEQ,
			Left:  plan.ColumnValueExpr{ColIdx: 0, Kind: types.KindInteger},
			Right: plan.ConstantExpr{Value: types.NewInteger(1)},
		},
		Output: rowSchema,
	}
	values := NewValuesExecutor(valuesPlan)
	filter := NewFilterExecutor(filterPlan, values)

	tuples, err := Run(filter)
	require.NoError(t, err)
	require.Len(t, tuples, 1)
	require.Equal(t, int32(1), tuples[0].GetValue(rowSchema, 0).AsInteger())
}

func TestInsertThenSeqScanEndToEnd(t *testing.T) {
	bp := newTestPool(t)
	h, err := heap.NewTableHeap(bp)
	require.NoError(t, err)
	cat := catalog.New()
	schema := types.NewSchema([]types.Column{
		types.NewIntegerColumn("a"),
		types.NewVarcharColumn("b", 32),
	})
	info, err := cat.CreateTable("t1", schema, h)
	require.NoError(t, err)

	valuesPlan := &plan.ValuesPlan{
		Rows: [][]plan.Expr{
			{plan.ConstantExpr{Value: types.NewInteger(1)}, plan.ConstantExpr{Value: types.NewVarchar("test1")}},
			{plan.ConstantExpr{Value: types.NewInteger(2)}, plan.ConstantExpr{Value: types.NewVarchar("test2")}},
		},
		Output: schema,
	}
	insertOutput := types.NewSchema([]types.Column{types.NewIntegerColumn("__rows")})
	insertPlan := &plan.InsertPlan{Table: info, Output: insertOutput}

	ctx := &Context{Txn: txn.New(), Lock: lock.NewManager()}
	values := NewValuesExecutor(valuesPlan)
	insert := NewInsertExecutor(insertPlan, values, ctx)

	tuples, err := Run(insert)
	require.NoError(t, err)
	require.Len(t, tuples, 1)
	require.Equal(t, int32(2), tuples[0].GetValue(insertOutput, 0).AsInteger())

	scanPlan := &plan.SeqScanPlan{Table: info, Output: schema}
	scan := NewSeqScanExecutor(scanPlan)
	scanned, err := Run(scan)
	require.NoError(t, err)
	require.Len(t, scanned, 2)
	require.Equal(t, "test1", scanned[0].GetValue(schema, 1).AsString())
}
