package explore

import (
	"fmt"

	"github.com/katalvlaran/pressure/core"
)

// Solve dispatches to Single (agents == 1) or Dual (agents == 2).
// It is the pure (graph, budget, agents) → yield entry point used by the
// CLI and the HTTP service.
func Solve(g *core.Graph, budget, agents int, opts ...Option) (Result, error) {
	switch agents {
	case 1:
		return Single(g, budget, opts...)
	case 2:
		return Dual(g, budget, opts...)
	default:
		return Result{}, fmt.Errorf("%w: got %d", ErrAgentCount, agents)
	}
}
