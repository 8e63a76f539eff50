package jsonfile

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sandevgo/promptvault/internal/core"
	"github.com/xeipuuv/gojsonschema"
)

// importSchema accepts a bare array or an envelope holding a prompts array.
// Individual records are checked one by one during import.
const importSchema = `{
  "oneOf": [
    {"type": "array"},
    {
      "type": "object",
      "required": ["prompts"],
      "properties": {"prompts": {"type": "array"}}
    }
  ]
}`

var loadImportSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(importSchema))
})

func validateImportShape(data []byte) error {
	schema, err := loadImportSchema()
	if err != nil {
		return fmt.Errorf("compile import schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidImport, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", core.ErrInvalidImport, strings.Join(msgs, "; "))
	}
	return nil
}
