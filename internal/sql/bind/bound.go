// Package bind implements the Binder: SQL AST -> bound
// tree, with scope-based name resolution.
package bind

import (
	"github.com/graindb/graindb/internal/catalog"
	"github.com/graindb/graindb/internal/sql/ast"
	"github.com/graindb/graindb/internal/types"
)

// Statement is the sum type of bound statements.
type Statement interface {
	boundStmtNode()
}

// Expr is the sum type of bound expressions.
type Expr interface {
	boundExprNode()
}

// Constant is a bound literal value.
type Constant struct {
	Value types.Value
}

func (Constant) boundExprNode() {}

// ColumnRef is a resolved column reference, rewritten to its bound
// table name and column name.
type ColumnRef struct {
	Table  string
	Column string
	Kind   types.Kind
}

func (ColumnRef) boundExprNode() {}

// BinaryOp is a bound binary operator application.
type BinaryOp struct {
	Op    ast.BinOp
	Left  Expr
	Right Expr
}

func (BinaryOp) boundExprNode() {}

// TableRef is the sum type of bound FROM targets.
type TableRef interface {
	RefName() string
	RefSchema() *types.Schema
}

// BaseTableRef binds to a real catalog table.
type BaseTableRef struct {
	Table *catalog.TableInfo
}

func (r BaseTableRef) RefName() string           { return r.Table.Name }
func (r BaseTableRef) RefSchema() *types.Schema  { return r.Table.Schema }

// ValuesListRef is the synthetic `__values#k` mock table produced when
// binding INSERT ... VALUES.
type ValuesListRef struct {
	Name   string
	Schema *types.Schema
	Rows   [][]Expr
}

func (r ValuesListRef) RefName() string          { return r.Name }
func (r ValuesListRef) RefSchema() *types.Schema { return r.Schema }

// Select is a bound SELECT: projection items, an optional FROM, an
// optional WHERE. GROUP BY/HAVING/LIMIT/OFFSET/ORDER BY are not
// represented.
type Select struct {
	Items []Expr
	From  TableRef // nil if there is no FROM clause
	Where Expr     // nil if absent
}

func (Select) boundStmtNode() {}

// Insert is a bound INSERT: the target table plus a wrapping Select
// (FROM the mock values-list, projecting its columns positionally).
type Insert struct {
	Table  *catalog.TableInfo
	Select *Select
}

func (Insert) boundStmtNode() {}

// Create is a bound CREATE TABLE.
type Create struct {
	Table   string
	Columns []types.Column
}

func (Create) boundStmtNode() {}
