package taxonomy

import "errors"

// ErrUnknownDiscipline indicates a discipline ID outside the fixed registry.
var ErrUnknownDiscipline = errors.New("unknown discipline")
