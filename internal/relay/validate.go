package relay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const requestSchemaJSON = `{
  "type": "object",
  "required": ["prompt"],
  "properties": {
    "prompt": { "type": "string", "minLength": 1 }
  }
}`

var requestSchemaLoader = gojsonschema.NewStringLoader(requestSchemaJSON)

type request struct {
	Prompt string `json:"prompt"`
}

// parseRequest проверяет payload по схеме и достаёт prompt.
func parseRequest(data json.RawMessage) (request, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		data = json.RawMessage("null")
	}

	result, err := gojsonschema.Validate(requestSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return request{}, fmt.Errorf("validate payload: %w", err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return request{}, fmt.Errorf("invalid payload: %s", strings.Join(issues, "; "))
	}

	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		return request{}, fmt.Errorf("decode payload: %w", err)
	}
	return req, nil
}
