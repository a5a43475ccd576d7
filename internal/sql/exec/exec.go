// Package exec implements the volcano-model executors:
// each implements Init/Next and exposes its output schema.
package exec

import (
	"fmt"

	"github.com/graindb/graindb/internal/lock"
	"github.com/graindb/graindb/internal/txn"
	"github.com/graindb/graindb/internal/types"
)

// Error wraps every executor failure, ExecError.
type Error struct{ msg string }

func (e *Error) Error() string { return "exec: " + e.msg }

func errorf(format string, args ...any) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Context is handed to every executor: the active transaction identity
// and lock manager stub, ("only a transaction identity
// is consumed").
type Context struct {
	Txn  txn.ID
	Lock *lock.Manager
}

// Executor is the volcano-model iterator interface. Init is called once
// before the first Next; Next returns ok=false to signal end-of-stream,
// which is distinct from a non-nil error — a failed Next poisons the
// rest of the plan.
type Executor interface {
	Init() error
	Next() (types.RID, types.Tuple, bool, error)
	OutputSchema() *types.Schema
}

// Run drives root to completion, collecting every yielded tuple by
// calling Init once and then Next in a loop until it signals done.
func Run(root Executor) ([]types.Tuple, error) {
	if err := root.Init(); err != nil {
		return nil, err
	}
	var out []types.Tuple
	for {
		_, tup, ok, err := root.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, tup)
	}
}
