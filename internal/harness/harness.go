package harness

import (
	"github.com/roach88/numera"
	"github.com/roach88/numera/codec"
)

// StepResult records the outcome of one executed step. Error codes are
// part of the conversion contract, so failures are snapshot data like
// any other outcome.
type StepResult struct {
	Op     string   `json:"op"`
	Status string   `json:"status"` // "ok" or "error"
	Value  string   `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
	Int    *int64   `json:"int,omitempty"`
	System string   `json:"system,omitempty"`
	Code   string   `json:"code,omitempty"`
}

// Result is the full execution snapshot for a scenario.
type Result struct {
	Scenario string       `json:"scenario"`
	Steps    []StepResult `json:"steps"`
}

// Run executes every step of the scenario in order and returns the
// snapshot. Conversion failures are recorded, never propagated: the
// snapshot is the complete observable behavior.
func Run(sc *Scenario) *Result {
	result := &Result{
		Scenario: sc.Name,
		Steps:    make([]StepResult, 0, len(sc.Steps)),
	}
	for _, step := range sc.Steps {
		result.Steps = append(result.Steps, runStep(step))
	}
	return result
}

func runStep(step Step) StepResult {
	opts := stepOptions(step)

	switch step.Op {
	case OpEncode:
		s, err := numera.Encode(*step.Int, numera.System(step.To), opts...)
		if err != nil {
			return errResult(step.Op, err)
		}
		return StepResult{Op: step.Op, Status: "ok", Value: s}

	case OpEncodeAll:
		values, err := numera.EncodeAll(step.Ints, numera.System(step.To), opts...)
		if err != nil {
			return errResult(step.Op, err)
		}
		return StepResult{Op: step.Op, Status: "ok", Values: values}

	case OpDecode:
		n, err := numera.Decode(step.Text, opts...)
		if err != nil {
			return errResult(step.Op, err)
		}
		return StepResult{Op: step.Op, Status: "ok", Int: &n}

	case OpTranslate:
		s, err := numera.Translate(step.Text, numera.System(step.To), opts...)
		if err != nil {
			return errResult(step.Op, err)
		}
		return StepResult{Op: step.Op, Status: "ok", Value: s}

	case OpDetect:
		sys, ok := numera.Detect(step.Text)
		if !ok {
			return StepResult{Op: step.Op, Status: "error", Code: string(codec.CodeUnknownSystem)}
		}
		return StepResult{Op: step.Op, Status: "ok", System: string(sys)}
	}

	// Unreachable after Validate.
	return StepResult{Op: step.Op, Status: "error", Code: "unknown_op"}
}

func stepOptions(step Step) []numera.Option {
	var opts []numera.Option
	if step.From != "" {
		opts = append(opts, numera.WithFrom(numera.System(step.From)))
	}
	if step.Separator != "" {
		opts = append(opts, numera.WithSeparator([]rune(step.Separator)[0]))
	}
	return opts
}

func errResult(op string, err error) StepResult {
	return StepResult{Op: op, Status: "error", Code: string(codec.ErrorCode(err))}
}
