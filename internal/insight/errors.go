package insight

import "fmt"

// GenerationError reports that the completion call itself failed: transport,
// non-2xx status, undecodable body or an empty candidate list.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate content: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// NewGenerationError wraps err unless it already is a *GenerationError.
func NewGenerationError(err error) error {
	if err == nil {
		return nil
	}
	if ge, ok := err.(*GenerationError); ok {
		return ge
	}
	return &GenerationError{Err: err}
}

// ParseError reports a reply that could not be read as an insight.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparsable insight reply: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
