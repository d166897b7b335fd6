// Package prompts holds the static instruction and specification text for
// each inference stage, plus prompt composition. Instructions describe the
// analyst role; specs pin down the exact JSON response contract.
package prompts

import (
	"encoding/json"
	"slices"
)

// Stage identifies an inference stage with its own prompt text.
type Stage string

// Valid inference stages.
const (
	StageScore Stage = "score"
)

var stages = []Stage{
	StageScore,
}

// Stages returns the list of valid inference stages.
func Stages() []Stage {
	return stages
}

// UnmarshalJSON validates that the decoded string is a known stage value.
func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Stage(raw)
	if !slices.Contains(stages, v) {
		return ErrInvalidStage
	}
	*s = v
	return nil
}

// ParseStage validates a string as a known inference stage.
// Returns ErrInvalidStage if the value is not recognized.
func ParseStage(s string) (Stage, error) {
	v := Stage(s)
	if !slices.Contains(stages, v) {
		return "", ErrInvalidStage
	}
	return v, nil
}
