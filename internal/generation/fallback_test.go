// internal/generation/fallback_test.go
package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameforge/internal/models"
	"gameforge/pkg/registry"
)

func TestSynthesizeProducesValidArtifactForEveryType(t *testing.T) {
	r := registry.Default()
	synthesizer := NewSynthesizer(r)
	validator := NewValidator(r)

	for _, gameType := range models.AllGameTypes() {
		artifact := synthesizer.Synthesize(gameType)

		assert.True(t, artifact.Degraded, "type %s", gameType)
		assert.Equal(t, gameType, artifact.Type)
		assert.NotEmpty(t, artifact.Title)
		require.NoError(t, validator.Validate(artifact), "fallback for %s must pass validation", gameType)
	}
}

func TestSynthesizeUnknownTypeFallsBackToGeneric(t *testing.T) {
	synthesizer := NewSynthesizer(registry.Default())

	artifact := synthesizer.Synthesize(models.GameType("roguelike"))
	assert.Equal(t, models.GameTypeGeneric, artifact.Type)
	assert.True(t, artifact.Degraded)
}

func TestSynthesizeReturnsIndependentCopies(t *testing.T) {
	synthesizer := NewSynthesizer(registry.Default())

	first := synthesizer.Synthesize(models.GameTypeQuiz)
	first.GameData["questions"] = nil

	second := synthesizer.Synthesize(models.GameTypeQuiz)
	assert.NotNil(t, second.GameData["questions"])
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	synthesizer := NewSynthesizer(registry.Default())

	a := synthesizer.Synthesize(models.GameTypePuzzle)
	b := synthesizer.Synthesize(models.GameTypePuzzle)
	assert.Equal(t, a.Title, b.Title)
	assert.Equal(t, a.Code, b.Code)
	assert.Equal(t, a.GameData, b.GameData)
}
