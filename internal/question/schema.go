package question

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// poolSchemaJSON is the JSON Schema a question pool file must satisfy.
// Validation catches structural problems (missing stems, non-array
// choices) before loading; range problems (out-of-band difficulty
// factors) are clamped, not rejected.
const poolSchemaJSON = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "questionType", "stimulus", "stem", "answerChoices"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "questionType": {"type": "string", "minLength": 1},
      "stimulus": {"type": "string"},
      "stem": {"type": "string", "minLength": 1},
      "answerChoices": {
        "type": "array",
        "minItems": 2,
        "items": {
          "type": "object",
          "required": ["id", "text", "isCorrect"],
          "properties": {
            "id": {"type": "string", "minLength": 1},
            "text": {"type": "string"},
            "isCorrect": {"type": "boolean"},
            "explanation": {"type": "string"}
          }
        }
      },
      "difficultyFactors": {
        "type": "object",
        "properties": {
          "abstractness": {"type": "integer"},
          "argumentComplexity": {"type": "integer"},
          "vocabularyLevel": {"type": "integer"},
          "trapDensity": {"type": "integer"}
        }
      },
      "timeRecommendation": {"type": "integer", "minimum": 0}
    }
  }
}`

var (
	poolSchemaOnce sync.Once
	poolSchema     *jsonschema.Schema
	poolSchemaErr  error
)

// compiledPoolSchema compiles the pool schema once and caches it.
func compiledPoolSchema() (*jsonschema.Schema, error) {
	poolSchemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(poolSchemaJSON), &parsed); err != nil {
			poolSchemaErr = fmt.Errorf("parse pool schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-pool.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			poolSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		poolSchema, poolSchemaErr = c.Compile(schemaURL)
	})
	return poolSchema, poolSchemaErr
}

// validatePool validates raw pool JSON against the pool schema.
func validatePool(raw []byte) error {
	compiled, err := compiledPoolSchema()
	if err != nil {
		return err
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
