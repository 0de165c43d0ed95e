package analyst

import "errors"

var (
	ErrEmptyQuestion = errors.New("question is required")
	ErrRemoteCall    = errors.New("llm call failed")
	ErrRender        = errors.New("chart rendering failed")
)
