package transport

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// extractAPIError pulls the server's error message out of a failure body.
// Returns (message, true) when the body is valid JSON with a string "error"
// field. Otherwise returns a description of why the body could not be read
// and false. This never fails; the two-path result only changes what gets
// logged and reported, not control flow.
func extractAPIError(body []byte) (string, bool) {
	if len(body) == 0 {
		return "empty response body", false
	}
	if !gjson.ValidBytes(body) {
		return fmt.Sprintf("response body is not valid JSON: %.100s", body), false
	}
	field := gjson.GetBytes(body, "error")
	if !field.Exists() {
		return "response body has no error field", false
	}
	if field.Type != gjson.String {
		return fmt.Sprintf("error field is not a string: %s", field.Raw), false
	}
	return field.String(), true
}
