// internal/common/validation/catalog.go
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// catalogSchema is the JSON Schema every scheme catalog must satisfy before
// it is accepted at startup. Unknown eligibility keys are allowed so newer
// catalogs keep loading on older binaries.
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["scheme_id", "name", "benefit_amount"],
    "properties": {
      "scheme_id": {"type": "string", "minLength": 1},
      "name": {"type": "string", "minLength": 1},
      "name_hi": {"type": "string"},
      "ministry": {"type": "string"},
      "description": {"type": "string"},
      "benefit_amount": {"type": "string"},
      "benefit_type": {"type": "string"},
      "how_to_apply": {"type": "string"},
      "apply_url": {"type": "string"},
      "documents": {"type": "array", "items": {"type": "string"}},
      "eligibility": {
        "type": "object",
        "properties": {
          "age_min": {"type": "integer", "minimum": 0},
          "age_max": {"type": "integer", "minimum": 0},
          "gender": {"type": "array", "items": {"type": "string"}},
          "states": {"type": "array", "items": {"type": "string"}},
          "occupations": {"type": "array", "items": {"type": "string"}},
          "categories": {"type": "array", "items": {"type": "string"}},
          "income_max": {"type": "integer", "minimum": 0},
          "bpl_required": {"type": "boolean"},
          "disability_required": {"type": "boolean"},
          "disability": {"type": "boolean"},
          "land_required": {"type": "boolean"},
          "marital_status": {"type": "array", "items": {"type": "string"}}
        },
        "additionalProperties": true
      }
    },
    "additionalProperties": true
  }
}`

// ValidateCatalog checks raw catalog JSON against the catalog schema and
// returns a single error listing every violation.
func ValidateCatalog(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("catalog validation error: %w", err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("catalog schema violations: %s", strings.Join(msgs, "; "))
}
