// Package optimizer is an identity-pass optimizer: plan -> plan, with
// no rewriting. It exists as a seam for a future real optimizer.
package optimizer

import "github.com/graindb/graindb/internal/sql/plan"

// Optimize returns p unchanged.
func Optimize(p plan.Plan) (plan.Plan, error) {
	return p, nil
}
