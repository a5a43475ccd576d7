package plan

import (
	"fmt"

	"github.com/graindb/graindb/internal/sql/bind"
	"github.com/graindb/graindb/internal/types"
)

// Build dispatches on the bound statement's concrete type.
func Build(stmt bind.Statement) (Plan, error) {
	switch s := stmt.(type) {
	case bind.Select:
		return PlanSelect(s)
	case bind.Insert:
		return PlanInsert(s)
	default:
		return nil, errorf("unsupported bound statement %T", stmt)
	}
}

// PlanSelect implements the plan_select.
func PlanSelect(s bind.Select) (Plan, error) {
	var child Plan
	var childSchema *types.Schema

	switch from := s.From.(type) {
	case nil:
		return nil, errorf("SELECT with no FROM clause is unsupported")
	case bind.BaseTableRef:
		childSchema = from.Table.Schema
		child = &SeqScanPlan{Table: from.Table, Output: childSchema}
	case bind.ValuesListRef:
		childSchema = from.Schema
		rows := make([][]Expr, 0, len(from.Rows))
		for _, row := range from.Rows {
			lowered := make([]Expr, 0, len(row))
			for _, e := range row {
				le, err := lowerExpr(e, childSchema)
				if err != nil {
					return nil, err
				}
				lowered = append(lowered, le)
			}
			rows = append(rows, lowered)
		}
		child = &ValuesPlan{Rows: rows, Output: childSchema}
	default:
		return nil, errorf("unsupported FROM target %T", s.From)
	}

	if s.Where != nil {
		pred, err := lowerExpr(s.Where, childSchema)
		if err != nil {
			return nil, err
		}
		child = &FilterPlan{Child: child, Predicate: pred, Output: childSchema}
	}

	exprs := make([]Expr, 0, len(s.Items))
	cols := make([]types.Column, 0, len(s.Items))
	for i, item := range s.Items {
		le, err := lowerExpr(item, childSchema)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, le)
		cols = append(cols, outputColumn(item, le, i))
	}
	output := types.NewSchema(cols)

	return &ProjectionPlan{Child: child, Exprs: exprs, Output: output}, nil
}

func outputColumn(item bind.Expr, lowered Expr, idx int) types.Column {
	name := fmt.Sprintf("__unnamed#%d", idx)
	kind := types.KindInteger
	if cv, ok := lowered.(ColumnValueExpr); ok {
		kind = cv.Kind
	}
	if cr, ok := item.(bind.ColumnRef); ok {
		name = cr.Column
	}
	switch kind {
	case types.KindVarchar:
		return types.NewVarcharColumn(name, 0)
	case types.KindBoolean:
		return types.NewBooleanColumn(name)
	default:
		return types.NewIntegerColumn(name)
	}
}

// PlanInsert implements the plan_insert: plan the child
// select, require column-wise type compatibility against the target
// schema, return an Insert node with output schema [("__rows", INTEGER)].
func PlanInsert(s bind.Insert) (Plan, error) {
	child, err := PlanSelect(*s.Select)
	if err != nil {
		return nil, err
	}
	childSchema := child.OutputSchema()
	target := s.Table.Schema
	if childSchema.Len() != target.Len() {
		return nil, errorf("INSERT into %q: column count %d does not match target %d", s.Table.Name, childSchema.Len(), target.Len())
	}
	for i := range target.Columns {
		if childSchema.Columns[i].Kind != target.Columns[i].Kind {
			return nil, errorf("INSERT into %q: column %d type %s does not match target type %s",
				s.Table.Name, i, childSchema.Columns[i].Kind, target.Columns[i].Kind)
		}
	}
	output := types.NewSchema([]types.Column{types.NewIntegerColumn("__rows")})
	return &InsertPlan{Table: s.Table, Child: child, Output: output}, nil
}
