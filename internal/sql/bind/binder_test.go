package bind

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graindb/graindb/internal/catalog"
	"github.com/graindb/graindb/internal/sql/ast"
	"github.com/graindb/graindb/internal/types"
)

func setupCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat := catalog.New()
	schema := types.NewSchema([]types.Column{
		types.NewIntegerColumn("a"),
		types.NewVarcharColumn("b", 32),
		types.NewVarcharColumn("c", 32),
		types.NewIntegerColumn("d"),
	})
	_, err := cat.CreateTable("t1", schema, nil)
	require.NoError(t, err)
	return cat
}

func TestBinder_BindCreate(t *testing.T) {
	b := New(catalog.New())
	stmt, err := b.Bind(ast.CreateTableStmt{
		Table: "t1",
		Columns: []ast.ColumnDef{
			{Name: "a", Kind: "INTEGER"},
			{Name: "b", Kind: "VARCHAR", VarLen: 32},
		},
	})
	require.NoError(t, err)
	create, ok := stmt.(Create)
	require.True(t, ok)
	require.Equal(t, "t1", create.Table)
	require.Len(t, create.Columns, 2)
}

func TestBinder_BindCreateRejectsUnknownType(t *testing.T) {
	b := New(catalog.New())
	_, err := b.Bind(ast.CreateTableStmt{
		Table:   "t1",
		Columns: []ast.ColumnDef{{Name: "a", Kind: "FLOAT"}},
	})
	require.Error(t, err)
}

func TestBinder_BindInsertBuildsMockValuesTable(t *testing.T) {
	cat := setupCatalog(t)
	b := New(cat)

	stmt, err := b.Bind(ast.InsertStmt{
		Table: "t1",
		Rows: [][]ast.Expr{
			{
				ast.Literal{Kind: "INTEGER", Int: 1},
				ast.Literal{Kind: "VARCHAR", Str: "test1"},
				ast.Literal{Kind: "VARCHAR", Str: "man"},
				ast.Literal{Kind: "INTEGER", Int: 1},
			},
		},
	})
	require.NoError(t, err)
	ins, ok := stmt.(Insert)
	require.True(t, ok)
	require.Equal(t, "t1", ins.Table.Name)
	require.Equal(t, "__values#0", ins.Select.From.RefName())
}

func TestBinder_BindInsertDistinctMockNamesPerCall(t *testing.T) {
	cat := setupCatalog(t)
	b := New(cat)
	row := []ast.Expr{
		ast.Literal{Kind: "INTEGER", Int: 1},
		ast.Literal{Kind: "VARCHAR", Str: "x"},
		ast.Literal{Kind: "VARCHAR", Str: "y"},
		ast.Literal{Kind: "INTEGER", Int: 2},
	}
	stmt1, err := b.Bind(ast.InsertStmt{Table: "t1", Rows: [][]ast.Expr{row}})
	require.NoError(t, err)
	stmt2, err := b.Bind(ast.InsertStmt{Table: "t1", Rows: [][]ast.Expr{row}})
	require.NoError(t, err)
	require.NotEqual(t, stmt1.(Insert).Select.From.RefName(), stmt2.(Insert).Select.From.RefName())
}

func TestBinder_BindInsertWrongArity(t *testing.T) {
	cat := setupCatalog(t)
	b := New(cat)
	_, err := b.Bind(ast.InsertStmt{
		Table: "t1",
		Rows:  [][]ast.Expr{{ast.Literal{Kind: "INTEGER", Int: 1}}},
	})
	require.Error(t, err)
}

func TestBinder_BindSelectStarRequiresFrom(t *testing.T) {
	cat := setupCatalog(t)
	b := New(cat)
	_, err := b.Bind(ast.SelectStmt{Items: []ast.Expr{ast.Star{}}})
	require.Error(t, err)
}

func TestBinder_BindSelectStarExpandsColumns(t *testing.T) {
	cat := setupCatalog(t)
	b := New(cat)
	stmt, err := b.Bind(ast.SelectStmt{Items: []ast.Expr{ast.Star{}}, From: "t1"})
	require.NoError(t, err)
	sel := stmt.(Select)
	require.Len(t, sel.Items, 4)
}

func TestBinder_BindSelectWhereResolvesColumn(t *testing.T) {
	cat := setupCatalog(t)
	b := New(cat)
	stmt, err := b.Bind(ast.SelectStmt{
		Items: []ast.Expr{ast.Star{}},
		From:  "t1",
		Where: ast.BinaryExpr{
			Op:    ast.OpEQ,
			Left:  ast.ColumnRef{Column: "a"},
			Right: ast.Literal{Kind: "INTEGER", Int: 1},
		},
	})
	require.NoError(t, err)
	sel := stmt.(Select)
	require.NotNil(t, sel.Where)
}

func TestBinder_BindSelectUnknownColumnFails(t *testing.T) {
	cat := setupCatalog(t)
	b := New(cat)
	_, err := b.Bind(ast.SelectStmt{
		Items: []ast.Expr{ast.ColumnRef{Column: "nope"}},
		From:  "t1",
	})
	require.Error(t, err)
}

func TestBinder_BindSelectUnknownTableFails(t *testing.T) {
	cat := setupCatalog(t)
	b := New(cat)
	_, err := b.Bind(ast.SelectStmt{Items: []ast.Expr{ast.Star{}}, From: "nope"})
	require.Error(t, err)
}
