package frontend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graindb/graindb/internal/sql/ast"
)

func TestParse_CreateTable(t *testing.T) {
	stmts, err := Parse("CREATE TABLE t1 (a INT, b VARCHAR(32))")
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	ct := stmts[0].(ast.CreateTableStmt)
	require.Equal(t, "t1", ct.Table)
	require.Equal(t, "INTEGER", ct.Columns[0].Kind)
	require.Equal(t, "VARCHAR", ct.Columns[1].Kind)
	require.Equal(t, 32, ct.Columns[1].VarLen)
}

func TestParse_InsertValues(t *testing.T) {
	stmts, err := Parse("INSERT INTO t1 VALUES (1,'test1','man',1),(2,'test2','female',2)")
	require.NoError(t, err)
	ins := stmts[0].(ast.InsertStmt)
	require.Equal(t, "t1", ins.Table)
	require.Len(t, ins.Rows, 2)
	lit := ins.Rows[0][0].(ast.Literal)
	require.Equal(t, int32(1), lit.Int)
}

func TestParse_SelectWithWhere(t *testing.T) {
	stmts, err := Parse("SELECT * FROM t1 WHERE a = 1")
	require.NoError(t, err)
	sel := stmts[0].(ast.SelectStmt)
	require.Equal(t, "t1", sel.From)
	require.IsType(t, ast.Star{}, sel.Items[0])
	where := sel.Where.(ast.BinaryExpr)
	require.Equal(t, ast.OpEQ, where.Op)
}

func TestParse_MultipleStatements(t *testing.T) {
	stmts, err := Parse("CREATE TABLE t1 (a INT); INSERT INTO t1 VALUES (1)")
	require.NoError(t, err)
	require.Len(t, stmts, 2)
}

func TestParse_RejectsGarbage(t *testing.T) {
	_, err := Parse("not even sql (((")
	require.Error(t, err)
}
