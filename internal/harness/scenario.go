package harness

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conversion conformance scenario: a named sequence
// of steps executed in order against the public conversion API.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps are executed in order. Steps are independent: a failing
	// conversion is recorded as an outcome, not treated as a scenario
	// abort, so error behavior can be pinned alongside successes.
	Steps []Step `yaml:"steps"`
}

// Step describes one conversion operation.
type Step struct {
	// Op selects the operation: encode, encode_all, decode, translate
	// or detect.
	Op string `yaml:"op"`

	// Int is the input value for encode.
	Int *int64 `yaml:"int,omitempty"`

	// Ints is the input batch for encode_all.
	Ints []int64 `yaml:"ints,omitempty"`

	// Text is the input string for decode, translate and detect.
	Text string `yaml:"text,omitempty"`

	// From names the source system for decode and translate; empty
	// means auto-detection.
	From string `yaml:"from,omitempty"`

	// To names the target system for encode, encode_all and translate.
	To string `yaml:"to,omitempty"`

	// Separator is an optional single-rune digit-group separator.
	Separator string `yaml:"separator,omitempty"`
}

// Step operation constants.
const (
	OpEncode    = "encode"
	OpEncodeAll = "encode_all"
	OpDecode    = "decode"
	OpTranslate = "translate"
	OpDetect    = "detect"
)

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks structural requirements before execution.
func (sc *Scenario) Validate() error {
	if sc.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("at least one step is required")
	}
	for i, step := range sc.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

func (step *Step) validate() error {
	switch step.Op {
	case OpEncode:
		if step.Int == nil {
			return fmt.Errorf("encode requires int")
		}
		if step.To == "" {
			return fmt.Errorf("encode requires to")
		}
	case OpEncodeAll:
		if len(step.Ints) == 0 {
			return fmt.Errorf("encode_all requires ints")
		}
		if step.To == "" {
			return fmt.Errorf("encode_all requires to")
		}
	case OpDecode, OpDetect:
		if step.Text == "" {
			return fmt.Errorf("%s requires text", step.Op)
		}
	case OpTranslate:
		if step.Text == "" {
			return fmt.Errorf("translate requires text")
		}
		if step.To == "" {
			return fmt.Errorf("translate requires to")
		}
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
	if step.Separator != "" && utf8.RuneCountInString(step.Separator) != 1 {
		return fmt.Errorf("separator must be a single rune, got %q", step.Separator)
	}
	return nil
}
