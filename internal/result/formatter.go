// Package result is the external result-set table formatter: it
// consumes (output_schema, [tuple]) and renders a table using a
// standard-library tabwriter.
package result

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/graindb/graindb/internal/types"
)

// Formatter renders a result set to w.
type Formatter interface {
	Format(w io.Writer, schema *types.Schema, tuples []types.Tuple) error
}

// TextFormatter renders a simple aligned text table.
type TextFormatter struct{}

func (TextFormatter) Format(w io.Writer, schema *types.Schema, tuples []types.Tuple) error {
	if schema == nil {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)

	names := make([]string, len(schema.Columns))
	for i, c := range schema.Columns {
		names[i] = c.Name
	}
	fmt.Fprintln(tw, strings.Join(names, "\t"))

	for _, tup := range tuples {
		cells := make([]string, schema.Len())
		for i := range schema.Columns {
			cells[i] = formatValue(tup.GetValue(schema, i))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func formatValue(v types.Value) string {
	if v.IsNull() {
		return "NULL"
	}
	switch v.Kind() {
	case types.KindInteger:
		return fmt.Sprintf("%d", v.AsInteger())
	case types.KindBoolean:
		return fmt.Sprintf("%t", v.AsBoolean())
	case types.KindVarchar:
		return v.AsString()
	default:
		return ""
	}
}
