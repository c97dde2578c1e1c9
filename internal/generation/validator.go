// internal/generation/validator.go
package generation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"gameforge/internal/common/errors"
	"gameforge/internal/models"
	"gameforge/pkg/registry"
)

// Validator enforces the artifact contract: code that runs self-contained in
// the page, and game data matching the registered schema for its type.
type Validator struct {
	registry *registry.TypeRegistry
}

// NewValidator creates a validator over the given registry.
func NewValidator(r *registry.TypeRegistry) *Validator {
	return &Validator{registry: r}
}

// Validate checks an artifact. Violations return GENERATION_INVALID_OUTPUT.
func (v *Validator) Validate(artifact models.Artifact) error {
	if err := validateCode(artifact.Code); err != nil {
		return err
	}
	return v.validateGameData(artifact.Type, artifact.GameData)
}

// validateCode rejects module syntax and code that never touches the
// container element. These are the two failure modes that make an artifact
// unrunnable in the host page.
func validateCode(code string) error {
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "import{") {
			return errors.NewGenerationInvalidOutputError("code uses module import syntax")
		}
		if strings.HasPrefix(trimmed, "export ") {
			return errors.NewGenerationInvalidOutputError("code uses module export syntax")
		}
		if strings.Contains(trimmed, "require(") {
			return errors.NewGenerationInvalidOutputError("code uses require()")
		}
	}

	if !strings.Contains(code, "game-container") {
		return errors.NewGenerationInvalidOutputError("code does not attach to the game-container element")
	}
	return nil
}

// validateGameData checks the data document against the type's JSON schema,
// plus the cross-field checks a schema alone cannot express.
func (v *Validator) validateGameData(gameType models.GameType, data map[string]interface{}) error {
	entry, ok := v.registry.Get(gameType)
	if !ok {
		return errors.NewGenerationInvalidOutputError(fmt.Sprintf("unknown game type %q", gameType))
	}

	schema := gojsonschema.NewStringLoader(entry.GameDataSchema)
	doc := gojsonschema.NewGoLoader(data)

	result, err := gojsonschema.Validate(schema, doc)
	if err != nil {
		return errors.NewGenerationInvalidOutputError("game data validation failed: " + err.Error())
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, violation := range result.Errors() {
			details = append(details, violation.String())
		}
		return errors.NewGenerationInvalidOutputError("game data schema violations: " + strings.Join(details, "; "))
	}

	if gameType == models.GameTypeQuiz {
		return validateQuizAnswers(data)
	}
	return nil
}

// validateQuizAnswers checks that every correctIndex points inside its
// answers array. The schema guarantees shape and non-negativity; the upper
// bound depends on the sibling array length.
func validateQuizAnswers(data map[string]interface{}) error {
	questions, _ := data["questions"].([]interface{})
	for i, raw := range questions {
		q, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		answers, _ := q["answers"].([]interface{})
		idx, ok := q["correctIndex"].(float64)
		if !ok {
			continue
		}
		if int(idx) >= len(answers) {
			return errors.NewGenerationInvalidOutputError(
				fmt.Sprintf("question %d: correctIndex %d out of range for %d answers", i, int(idx), len(answers)))
		}
	}
	return nil
}
