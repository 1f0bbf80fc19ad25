package solver

// Raw accessors and aliases for white-box assertions from solver_test.

// GatherOptions resolves setters against the defaults exactly as Solve does.
var GatherOptions = gatherOptions

// RawMethod returns the configured method.
func (o Options) RawMethod() Method { return o.method }

// RawTolerance returns the configured residual threshold.
func (o Options) RawTolerance() float64 { return o.tolerance }

// RawBreakdownTol returns the configured BiCG pivot threshold.
func (o Options) RawBreakdownTol() float64 { return o.breakdownTol }
