package inference

import "errors"

var ErrMalformedResponse = errors.New("malformed inference response")
