package plan

import (
	"fmt"

	"github.com/graindb/graindb/internal/sql/ast"
	"github.com/graindb/graindb/internal/sql/bind"
	"github.com/graindb/graindb/internal/types"
)

// Error wraps every planner failure, PlanError.
type Error struct{ msg string }

func (e *Error) Error() string { return "plan: " + e.msg }

func errorf(format string, args ...any) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Expr is a lowered, evaluable expression, represented as a tagged
// union with boxed children.
type Expr interface {
	Evaluate(tuple types.Tuple, schema *types.Schema) types.Value
	exprNode()
}

// ConstantExpr evaluates to a fixed value regardless of input.
type ConstantExpr struct {
	Value types.Value
}

func (e ConstantExpr) exprNode() {}
func (e ConstantExpr) Evaluate(types.Tuple, *types.Schema) types.Value { return e.Value }

// ColumnValueExpr evaluates to the value of one column of the tuple at
// TupleIdx (always 0 in this single-stream executor model).
type ColumnValueExpr struct {
	TupleIdx int
	ColIdx   int
	Kind     types.Kind
}

func (e ColumnValueExpr) exprNode() {}

func (e ColumnValueExpr) Evaluate(tuple types.Tuple, schema *types.Schema) types.Value {
	return tuple.GetValue(schema, e.ColIdx)
}

// CmpType enumerates the comparison operators CompareExpr supports.
type CmpType int

const (
	CmpEQ CmpType = iota
	CmpNE
	CmpLT
	CmpLE
	CmpGT
	CmpGE
)

// CompareExpr evaluates a comparison, producing a BOOLEAN value (null if
// either side is null, per types.Value's three-valued comparisons).
type CompareExpr struct {
	Cmp   CmpType
	Left  Expr
	Right Expr
}

func (e CompareExpr) exprNode() {}

func (e CompareExpr) Evaluate(tuple types.Tuple, schema *types.Schema) types.Value {
	l := e.Left.Evaluate(tuple, schema)
	r := e.Right.Evaluate(tuple, schema)
	var cmp types.CmpBool
	switch e.Cmp {
	case CmpEQ:
		cmp = l.Equal(r)
	case CmpNE:
		cmp = l.NotEqual(r)
	case CmpLT:
		cmp = l.Less(r)
	case CmpLE:
		cmp = l.LessEqual(r)
	case CmpGT:
		cmp = l.Greater(r)
	case CmpGE:
		cmp = l.GreaterEqual(r)
	}
	switch cmp {
	case types.CmpTrue:
		return types.NewBoolean(true)
	case types.CmpFalse:
		return types.NewBoolean(false)
	default:
		return types.NullValue(types.KindBoolean)
	}
}

// ArithType enumerates the arithmetic operators ArithExpr supports.
type ArithType int

const (
	ArithAdd ArithType = iota
	ArithSub
	ArithMul
	ArithDiv
)

// ArithExpr evaluates an arithmetic expression over two INTEGER operands.
type ArithExpr struct {
	Op    ArithType
	Left  Expr
	Right Expr
}

func (e ArithExpr) exprNode() {}

func (e ArithExpr) Evaluate(tuple types.Tuple, schema *types.Schema) types.Value {
	l := e.Left.Evaluate(tuple, schema)
	r := e.Right.Evaluate(tuple, schema)
	switch e.Op {
	case ArithAdd:
		return l.Add(r)
	case ArithSub:
		return l.Sub(r)
	case ArithMul:
		return l.Mul(r)
	case ArithDiv:
		return l.Div(r)
	default:
		return types.NullValue(types.KindInteger)
	}
}

// lowerExpr lowers a bound expression against childSchema, resolving
// column references positionally with duplicate-name detection.
// AND/OR lowering is an explicit, marked extension point — it is left
// unimplemented here rather than silently mis-lowered into a
// comparison.
func lowerExpr(e bind.Expr, childSchema *types.Schema) (Expr, error) {
	switch x := e.(type) {
	case bind.Constant:
		return ConstantExpr{Value: x.Value}, nil
	case bind.ColumnRef:
		idx, err := resolveColumnIndex(x.Column, childSchema)
		if err != nil {
			return nil, err
		}
		return ColumnValueExpr{TupleIdx: 0, ColIdx: idx, Kind: childSchema.Columns[idx].Kind}, nil
	case bind.BinaryOp:
		left, err := lowerExpr(x.Left, childSchema)
		if err != nil {
			return nil, err
		}
		right, err := lowerExpr(x.Right, childSchema)
		if err != nil {
			return nil, err
		}
		switch x.Op {
		case ast.OpEQ:
			return CompareExpr{Cmp: CmpEQ, Left: left, Right: right}, nil
		case ast.OpNE:
			return CompareExpr{Cmp: CmpNE, Left: left, Right: right}, nil
		case ast.OpLT:
			return CompareExpr{Cmp: CmpLT, Left: left, Right: right}, nil
		case ast.OpLE:
			return CompareExpr{Cmp: CmpLE, Left: left, Right: right}, nil
		case ast.OpGT:
			return CompareExpr{Cmp: CmpGT, Left: left, Right: right}, nil
		case ast.OpGE:
			return CompareExpr{Cmp: CmpGE, Left: left, Right: right}, nil
		case ast.OpAdd:
			return ArithExpr{Op: ArithAdd, Left: left, Right: right}, nil
		case ast.OpSub:
			return ArithExpr{Op: ArithSub, Left: left, Right: right}, nil
		case ast.OpMul:
			return ArithExpr{Op: ArithMul, Left: left, Right: right}, nil
		case ast.OpDiv:
			return ArithExpr{Op: ArithDiv, Left: left, Right: right}, nil
		case ast.OpAnd, ast.OpOr:
			return nil, errorf("logical AND/OR lowering is not implemented (extension point)")
		default:
			return nil, errorf("unsupported operator")
		}
	default:
		return nil, errorf("unsupported bound expression %T", e)
	}
}

func resolveColumnIndex(name string, schema *types.Schema) (int, error) {
	idx := -1
	for i, c := range schema.Columns {
		if c.Name == name {
			if idx != -1 {
				return 0, errorf("duplicate column name %q in child output schema", name)
			}
			idx = i
		}
	}
	if idx == -1 {
		return 0, errorf("column %q not found in child output schema", name)
	}
	return idx, nil
}
