package prompts

import "errors"

var ErrInvalidStage = errors.New("invalid inference stage")
