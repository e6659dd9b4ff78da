// Package json writes results as indented JSON for scripts and editors
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/zen/pkg/errors"
)

// Renderer encodes each value it is given as one JSON document
type Renderer struct {
	enc *json.Encoder
}

type errorDoc struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type messageDoc struct {
	Message string `json:"message"`
}

func New(w io.Writer) *Renderer {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	// expansions are markup; keep < and > readable
	enc.SetEscapeHTML(false)
	return &Renderer{enc: enc}
}

func (r *Renderer) RenderResult(result interface{}) error {
	return r.enc.Encode(result)
}

// RenderError writes {"error", "code", "details"}
func (r *Renderer) RenderError(err error) error {
	return r.enc.Encode(errorDoc{
		Error:   err.Error(),
		Code:    errors.GetErrorCode(err),
		Details: errors.GetErrorDetails(err),
	})
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.enc.Encode(messageDoc{Message: msg})
}
