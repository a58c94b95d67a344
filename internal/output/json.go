// internal/output/json.go
package output

import (
	"io"

	"headloop/internal/jsonutil"
)

// WriteJSON writes the v1 design schema (pretty-indented).
func WriteJSON(w io.Writer, r Report) error {
	return jsonutil.EncodePretty(w, ToAPI(r))
}
