// Package frontend adapts the third-party TiDB SQL grammar into
// graindb's own internal/sql/ast tree — parsing SQL text into
// statements via a third-party SQL grammar rather than a hand-rolled
// parser.
package frontend

import (
	"fmt"

	"github.com/pingcap/tidb/pkg/parser"
	tiast "github.com/pingcap/tidb/pkg/parser/ast"
	"github.com/pingcap/tidb/pkg/parser/opcode"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver" // registers the literal-value expr driver

	"github.com/graindb/graindb/internal/sql/ast"
)

// Parse parses sql and converts every resulting statement into
// graindb's own AST.
func Parse(sql string) ([]ast.Statement, error) {
	p := parser.New()
	nodes, _, err := p.Parse(sql, "", "")
	if err != nil {
		return nil, fmt.Errorf("frontend: parse: %w", err)
	}
	out := make([]ast.Statement, 0, len(nodes))
	for _, n := range nodes {
		stmt, err := convertStmt(n)
		if err != nil {
			return nil, err
		}
		out = append(out, stmt)
	}
	return out, nil
}

func convertStmt(n tiast.StmtNode) (ast.Statement, error) {
	switch s := n.(type) {
	case *tiast.CreateTableStmt:
		return convertCreateTable(s)
	case *tiast.InsertStmt:
		return convertInsert(s)
	case *tiast.SelectStmt:
		return convertSelect(s)
	default:
		return nil, fmt.Errorf("frontend: unsupported statement %T", n)
	}
}

func convertCreateTable(s *tiast.CreateTableStmt) (ast.Statement, error) {
	out := ast.CreateTableStmt{Table: s.Table.Name.String()}
	for _, col := range s.Cols {
		cd, err := convertColumnDef(col)
		if err != nil {
			return nil, err
		}
		out.Columns = append(out.Columns, cd)
	}
	return out, nil
}

func convertColumnDef(col *tiast.ColumnDef) (ast.ColumnDef, error) {
	name := col.Name.Name.String()
	tp := col.Tp
	if tp == nil {
		return ast.ColumnDef{}, fmt.Errorf("frontend: column %q has no type", name)
	}
	switch tp.GetType() {
	case mysqlTypeVarString, mysqlTypeVarchar, mysqlTypeString:
		return ast.ColumnDef{Name: name, Kind: "VARCHAR", VarLen: tp.GetFlen()}, nil
	case mysqlTypeLong, mysqlTypeLonglong, mysqlTypeInt24, mysqlTypeShort, mysqlTypeTiny:
		return ast.ColumnDef{Name: name, Kind: "INTEGER"}, nil
	default:
		return ast.ColumnDef{}, fmt.Errorf("frontend: unsupported column type %v for %q", tp.GetType(), name)
	}
}

func convertInsert(s *tiast.InsertStmt) (ast.Statement, error) {
	tn, ok := s.Table.TableRefs.Left.(*tiast.TableSource)
	if !ok {
		return nil, fmt.Errorf("frontend: unsupported insert target")
	}
	tbl, ok := tn.Source.(*tiast.TableName)
	if !ok {
		return nil, fmt.Errorf("frontend: unsupported insert target")
	}
	out := ast.InsertStmt{Table: tbl.Name.String()}
	for _, row := range s.Lists {
		var exprs []ast.Expr
		for _, e := range row {
			ce, err := convertExpr(e)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, ce)
		}
		out.Rows = append(out.Rows, exprs)
	}
	return out, nil
}

func convertSelect(s *tiast.SelectStmt) (ast.Statement, error) {
	out := ast.SelectStmt{}

	if s.From != nil {
		ts, ok := s.From.TableRefs.Left.(*tiast.TableSource)
		if ok {
			if tn, ok := ts.Source.(*tiast.TableName); ok {
				out.From = tn.Name.String()
			}
		}
	}

	if s.Fields != nil {
		for _, f := range s.Fields.Fields {
			if f.WildCard != nil {
				out.Items = append(out.Items, ast.Star{})
				continue
			}
			e, err := convertExpr(f.Expr)
			if err != nil {
				return nil, err
			}
			if f.AsName.String() != "" {
				e = ast.Alias{Expr: e, Name: f.AsName.String()}
			}
			out.Items = append(out.Items, e)
		}
	}

	if s.Where != nil {
		w, err := convertExpr(s.Where)
		if err != nil {
			return nil, err
		}
		out.Where = w
	}

	return out, nil
}

func convertExpr(e tiast.ExprNode) (ast.Expr, error) {
	switch n := e.(type) {
	case *tiast.BinaryOperationExpr:
		op, err := convertOp(n.Op)
		if err != nil {
			return nil, err
		}
		l, err := convertExpr(n.L)
		if err != nil {
			return nil, err
		}
		r, err := convertExpr(n.R)
		if err != nil {
			return nil, err
		}
		return ast.BinaryExpr{Op: op, Left: l, Right: r}, nil
	case *tiast.ColumnNameExpr:
		return ast.ColumnRef{Table: n.Name.Table.String(), Column: n.Name.Name.String()}, nil
	case tiast.ValueExpr:
		return convertValueExpr(n)
	case *tiast.ParenthesesExpr:
		return convertExpr(n.Expr)
	default:
		return nil, fmt.Errorf("frontend: unsupported expression %T", e)
	}
}

func convertValueExpr(v tiast.ValueExpr) (ast.Expr, error) {
	val := v.GetValue()
	if val == nil {
		return ast.Literal{IsNull: true}, nil
	}
	switch x := val.(type) {
	case int64:
		return ast.Literal{Kind: "INTEGER", Int: int32(x)}, nil
	case uint64:
		return ast.Literal{Kind: "INTEGER", Int: int32(x)}, nil
	case string:
		return ast.Literal{Kind: "VARCHAR", Str: x}, nil
	default:
		return ast.Literal{Kind: "VARCHAR", Str: fmt.Sprintf("%v", x)}, nil
	}
}

func convertOp(op opcode.Op) (ast.BinOp, error) {
	switch op {
	case opcode.Plus:
		return ast.OpAdd, nil
	case opcode.Minus:
		return ast.OpSub, nil
	case opcode.Mul:
		return ast.OpMul, nil
	case opcode.Div:
		return ast.OpDiv, nil
	case opcode.GT:
		return ast.OpGT, nil
	case opcode.GE:
		return ast.OpGE, nil
	case opcode.LT:
		return ast.OpLT, nil
	case opcode.LE:
		return ast.OpLE, nil
	case opcode.EQ:
		return ast.OpEQ, nil
	case opcode.NE:
		return ast.OpNE, nil
	case opcode.LogicAnd:
		return ast.OpAnd, nil
	case opcode.LogicOr:
		return ast.OpOr, nil
	default:
		return 0, fmt.Errorf("frontend: unsupported operator %v", op)
	}
}

// MySQL type-tag constants used only to classify ColumnDef.Tp.GetType();
// kept local so this file doesn't pull in the full mysql type package
// for eight constants.
const (
	mysqlTypeTiny     byte = 1
	mysqlTypeShort    byte = 2
	mysqlTypeLong     byte = 3
	mysqlTypeLonglong byte = 8
	mysqlTypeInt24    byte = 9
	mysqlTypeVarchar  byte = 15
	mysqlTypeString   byte = 254
	mysqlTypeVarString byte = 253
)
