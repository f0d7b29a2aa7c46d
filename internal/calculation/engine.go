package calculation

import (
	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

// Engine runs the deterministic buy-vs-rent projection. It is stateless
// between runs: identical parameter records always yield identical results,
// so callers may re-run it on every parameter change without caching.
type Engine struct {
	Debug  bool // enable debug output for detailed monthly breakdowns
	Logger Logger
}

// NewEngine creates a new simulation engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Run executes the full projection for one immutable parameter record and
// returns the complete result record. The engine is total on its documented
// input domain: degenerate inputs (zero horizon, zero principal, zero rates)
// fall into safe zero-cost/zero-payment branches instead of failing, and no
// I/O occurs.
func (e *Engine) Run(params *domain.SimulationParams) *domain.SimulationResult {
	result := &domain.SimulationResult{
		Params:      *params,
		MonthlyData: []domain.MonthlyRecord{},
		YearlyData:  []domain.YearlyRecord{},
	}
	result.Summary.InitialOutlay = params.InitialOutlay()

	if params.Years <= 0 {
		return result
	}

	e.generateProjection(params, result)

	if final := result.FinalYear(); final != nil {
		result.Summary.FinalNetWorthBuy = final.NetWorthBuy
		result.Summary.FinalNetWorthRent = final.NetWorthRent
	}
	return result
}
