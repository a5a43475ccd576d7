package bind

import (
	"fmt"

	"github.com/graindb/graindb/internal/catalog"
	"github.com/graindb/graindb/internal/sql/ast"
	"github.com/graindb/graindb/internal/types"
)

// Error wraps every failure the binder raises, BindError.
type Error struct {
	msg string
}

func (e *Error) Error() string { return "bind: " + e.msg }

func bindErrorf(format string, args ...any) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Binder binds a single statement's AST against a catalog. The mock
// values-list counter lives on the Binder instance, not global state,
// so distinct Binder instances never collide and repeated binds on the
// same instance get distinct synthetic names.
type Binder struct {
	cat         *catalog.Catalog
	mockCounter int
}

func New(cat *catalog.Catalog) *Binder {
	return &Binder{cat: cat}
}

// Bind dispatches on the AST statement's concrete type.
func (b *Binder) Bind(stmt ast.Statement) (Statement, error) {
	switch s := stmt.(type) {
	case ast.CreateTableStmt:
		return b.bindCreate(s)
	case ast.InsertStmt:
		return b.bindInsert(s)
	case ast.SelectStmt:
		return b.bindSelect(s, nil)
	default:
		return nil, bindErrorf("unsupported statement %T", stmt)
	}
}

func (b *Binder) bindCreate(s ast.CreateTableStmt) (Statement, error) {
	if len(s.Columns) == 0 {
		return nil, bindErrorf("CREATE TABLE %s: empty column list", s.Table)
	}
	cols := make([]types.Column, 0, len(s.Columns))
	for _, cd := range s.Columns {
		switch cd.Kind {
		case "INTEGER":
			cols = append(cols, types.NewIntegerColumn(cd.Name))
		case "VARCHAR":
			cols = append(cols, types.NewVarcharColumn(cd.Name, cd.VarLen))
		default:
			return nil, bindErrorf("CREATE TABLE %s: unsupported column type %q for %q", s.Table, cd.Kind, cd.Name)
		}
	}
	return Create{Table: s.Table, Columns: cols}, nil
}

func (b *Binder) bindInsert(s ast.InsertStmt) (Statement, error) {
	info, ok := b.cat.GetTableByName(s.Table)
	if !ok {
		return nil, bindErrorf("INSERT: unknown table %q", s.Table)
	}

	mockName := fmt.Sprintf("__values#%d", b.mockCounter)
	b.mockCounter++

	rows := make([][]Expr, 0, len(s.Rows))
	for _, row := range s.Rows {
		if len(row) != info.Schema.Len() {
			return nil, bindErrorf("INSERT into %q: row has %d values, expected %d", s.Table, len(row), info.Schema.Len())
		}
		bound := make([]Expr, 0, len(row))
		for _, e := range row {
			lit, ok := e.(ast.Literal)
			if !ok {
				return nil, bindErrorf("INSERT into %q: only constant values are supported", s.Table)
			}
			bound = append(bound, Constant{Value: literalToValue(lit)})
		}
		rows = append(rows, bound)
	}

	mockSchema := types.NewSchema(info.Schema.Columns)
	valuesRef := ValuesListRef{Name: mockName, Schema: mockSchema, Rows: rows}

	items := make([]Expr, 0, mockSchema.Len())
	for _, c := range mockSchema.Columns {
		items = append(items, ColumnRef{Table: mockName, Column: c.Name, Kind: c.Kind})
	}

	return Insert{
		Table:  info,
		Select: &Select{Items: items, From: valuesRef},
	}, nil
}

func (b *Binder) bindSelect(s ast.SelectStmt, outerScope TableRef) (Statement, error) {
	var scope TableRef
	if s.From != "" {
		info, ok := b.cat.GetTableByName(s.From)
		if !ok {
			return nil, bindErrorf("SELECT: unknown table %q", s.From)
		}
		scope = BaseTableRef{Table: info}
	}

	hasStar := false
	for _, it := range s.Items {
		if _, ok := it.(ast.Star); ok {
			hasStar = true
		}
	}
	if hasStar && len(s.Items) > 1 {
		return nil, bindErrorf("SELECT: cannot mix * with other projection items")
	}

	var items []Expr
	if hasStar {
		if scope == nil {
			return nil, bindErrorf("SELECT *: no table in scope")
		}
		for _, c := range scope.RefSchema().Columns {
			items = append(items, ColumnRef{Table: scope.RefName(), Column: c.Name, Kind: c.Kind})
		}
	} else {
		for _, it := range s.Items {
			be, err := b.bindExpr(it, scope)
			if err != nil {
				return nil, err
			}
			items = append(items, be)
		}
	}

	var where Expr
	if s.Where != nil {
		w, err := b.bindExpr(s.Where, scope)
		if err != nil {
			return nil, err
		}
		where = w
	}

	return Select{Items: items, From: scope, Where: where}, nil
}

func (b *Binder) bindExpr(e ast.Expr, scope TableRef) (Expr, error) {
	switch x := e.(type) {
	case ast.Literal:
		return Constant{Value: literalToValue(x)}, nil
	case ast.ColumnRef:
		return b.resolveColumn(x, scope)
	case ast.BinaryExpr:
		l, err := b.bindExpr(x.Left, scope)
		if err != nil {
			return nil, err
		}
		r, err := b.bindExpr(x.Right, scope)
		if err != nil {
			return nil, err
		}
		return BinaryOp{Op: x.Op, Left: l, Right: r}, nil
	case ast.Alias:
		return b.bindExpr(x.Expr, scope)
	case ast.Star:
		return nil, bindErrorf("unexpected * outside projection list")
	default:
		return nil, bindErrorf("unsupported expression %T", e)
	}
}

func (b *Binder) resolveColumn(ref ast.ColumnRef, scope TableRef) (Expr, error) {
	if scope == nil {
		return nil, bindErrorf("column %q referenced with no table in scope", ref.Column)
	}
	if ref.Table != "" && ref.Table != scope.RefName() {
		return nil, bindErrorf("unknown table qualifier %q for column %q", ref.Table, ref.Column)
	}
	idx := scope.RefSchema().ColumnIndex(ref.Column)
	if idx < 0 {
		return nil, bindErrorf("unknown column %q in table %q", ref.Column, scope.RefName())
	}
	col := scope.RefSchema().Columns[idx]
	return ColumnRef{Table: scope.RefName(), Column: col.Name, Kind: col.Kind}, nil
}

func literalToValue(lit ast.Literal) types.Value {
	if lit.IsNull {
		return types.NullValue(types.KindInteger)
	}
	switch lit.Kind {
	case "INTEGER":
		return types.NewInteger(lit.Int)
	case "BOOLEAN":
		return types.NewBoolean(lit.Bool)
	default:
		return types.NewVarchar(lit.Str)
	}
}
