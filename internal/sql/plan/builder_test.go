package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graindb/graindb/internal/catalog"
	"github.com/graindb/graindb/internal/sql/ast"
	"github.com/graindb/graindb/internal/sql/bind"
	"github.com/graindb/graindb/internal/types"
)

func testTableInfo() *catalog.TableInfo {
	schema := types.NewSchema([]types.Column{
		types.NewIntegerColumn("a"),
		types.NewVarcharColumn("b", 32),
	})
	return &catalog.TableInfo{OID: 0, Name: "t1", Schema: schema}
}

func TestPlanSelect_SeqScanWithFilterAndProjection(t *testing.T) {
	info := testTableInfo()
	sel := bind.Select{
		Items: []bind.Expr{bind.ColumnRef{Table: "t1", Column: "a", Kind: types.KindInteger}},
		From:  bind.BaseTableRef{Table: info},
		Where: bind.BinaryOp{
			Op:    ast.OpEQ,
			Left:  bind.ColumnRef{Table: "t1", Column: "a", Kind: types.KindInteger},
			Right: bind.Constant{Value: types.NewInteger(1)},
		},
	}
	p, err := PlanSelect(sel)
	require.NoError(t, err)

	proj, ok := p.(*ProjectionPlan)
	require.True(t, ok)
	filter, ok := proj.Child.(*FilterPlan)
	require.True(t, ok)
	_, ok = filter.Child.(*SeqScanPlan)
	require.True(t, ok)
}

func TestPlanSelect_ValuesList(t *testing.T) {
	schema := types.NewSchema([]types.Column{types.NewIntegerColumn("a")})
	sel := bind.Select{
		Items: []bind.Expr{bind.ColumnRef{Table: "__values#0", Column: "a", Kind: types.KindInteger}},
		From: bind.ValuesListRef{
			Name:   "__values#0",
			Schema: schema,
			Rows:   [][]bind.Expr{{bind.Constant{Value: types.NewInteger(1)}}},
		},
	}
	p, err := PlanSelect(sel)
	require.NoError(t, err)
	proj := p.(*ProjectionPlan)
	_, ok := proj.Child.(*ValuesPlan)
	require.True(t, ok)
}

func TestPlanInsert_TypeMismatchFails(t *testing.T) {
	info := testTableInfo()
	valuesSchema := types.NewSchema([]types.Column{
		types.NewIntegerColumn("a"),
		types.NewIntegerColumn("b"), // mismatched: target wants VARCHAR
	})
	ins := bind.Insert{
		Table: info,
		Select: &bind.Select{
			Items: []bind.Expr{
				bind.ColumnRef{Table: "__values#0", Column: "a", Kind: types.KindInteger},
				bind.ColumnRef{Table: "__values#0", Column: "b", Kind: types.KindInteger},
			},
			From: bind.ValuesListRef{
				Name:   "__values#0",
				Schema: valuesSchema,
				Rows:   [][]bind.Expr{{bind.Constant{Value: types.NewInteger(1)}, bind.Constant{Value: types.NewInteger(2)}}},
			},
		},
	}
	_, err := PlanInsert(ins)
	require.Error(t, err)
}
