package plan

import (
	"github.com/graindb/graindb/internal/catalog"
	"github.com/graindb/graindb/internal/types"
)

// Plan is the sum type of plan tree nodes, each carrying an output
// schema and children.
type Plan interface {
	OutputSchema() *types.Schema
	Children() []Plan
	planNode()
}

// SeqScanPlan drives a table heap's iterator.
type SeqScanPlan struct {
	Table  *catalog.TableInfo
	Output *types.Schema
}

func (p *SeqScanPlan) planNode()                 {}
func (p *SeqScanPlan) OutputSchema() *types.Schema { return p.Output }
func (p *SeqScanPlan) Children() []Plan          { return nil }

// ValuesPlan evaluates a fixed set of rows with no input tuple.
type ValuesPlan struct {
	Rows   [][]Expr
	Output *types.Schema
}

func (p *ValuesPlan) planNode()                 {}
func (p *ValuesPlan) OutputSchema() *types.Schema { return p.Output }
func (p *ValuesPlan) Children() []Plan          { return nil }

// FilterPlan evaluates Predicate against each child tuple.
type FilterPlan struct {
	Child     Plan
	Predicate Expr
	Output    *types.Schema
}

func (p *FilterPlan) planNode()                 {}
func (p *FilterPlan) OutputSchema() *types.Schema { return p.Output }
func (p *FilterPlan) Children() []Plan          { return []Plan{p.Child} }

// ProjectionPlan evaluates Exprs against each child tuple.
type ProjectionPlan struct {
	Child  Plan
	Exprs  []Expr
	Output *types.Schema
}

func (p *ProjectionPlan) planNode()                 {}
func (p *ProjectionPlan) OutputSchema() *types.Schema { return p.Output }
func (p *ProjectionPlan) Children() []Plan          { return []Plan{p.Child} }

// InsertPlan drains Child and inserts every tuple into Table's heap.
type InsertPlan struct {
	Table  *catalog.TableInfo
	Child  Plan
	Output *types.Schema // always [("__rows", INTEGER)]
}

func (p *InsertPlan) planNode()                 {}
func (p *InsertPlan) OutputSchema() *types.Schema { return p.Output }
func (p *InsertPlan) Children() []Plan          { return []Plan{p.Child} }
