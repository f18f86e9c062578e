package core

import "time"

// Plan is the result of asking the planner to reach a goal.
type Plan struct {
	ID        string    `json:"id"`
	Goal      string    `json:"goal"`
	Rationale string    `json:"rationale,omitempty"`
	Step      *PlanStep `json:"step,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PlanStep is the single function invocation chosen for a plan.
type PlanStep struct {
	Function   FunctionView      `json:"function"`
	Parameters map[string]string `json:"parameters"`
}

// HasStep reports whether the model picked a function. A plan without a step
// means none of the available functions fits the goal.
func (p *Plan) HasStep() bool {
	return p != nil && p.Step != nil
}
