package papers

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrParse             = errors.New("document parsing failed")
	ErrEmptyDocument     = errors.New("document contains no extractable text")
)
