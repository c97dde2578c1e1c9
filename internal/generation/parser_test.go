// internal/generation/parser_test.go
package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameforge/internal/common/errors"
	"gameforge/internal/models"
)

const wellFormedOutput = `TITLE: Space Quiz
DESCRIPTION: A quiz about space exploration
CODE_START
const app = new PIXI.Application({});
document.getElementById('game-container').appendChild(app.view);
const questions = GAME_DATA.questions;
CODE_END
DATA_START
{"questions": [{"question": "Q?", "answers": ["a", "b"], "correctIndex": 1}]}
DATA_END`

func TestParseOutputWellFormed(t *testing.T) {
	artifact, err := ParseOutput(wellFormedOutput, models.GameTypeQuiz)
	require.NoError(t, err)

	assert.Equal(t, "Space Quiz", artifact.Title)
	assert.Equal(t, "A quiz about space exploration", artifact.Description)
	assert.Contains(t, artifact.Code, "game-container")
	assert.Equal(t, models.GameTypeQuiz, artifact.Type)
	assert.False(t, artifact.Degraded)

	questions := artifact.GameData["questions"].([]interface{})
	require.Len(t, questions, 1)
}

func TestParseOutputStripsMarkdownFence(t *testing.T) {
	fenced := "```\n" + wellFormedOutput + "\n```"
	artifact, err := ParseOutput(fenced, models.GameTypeQuiz)
	require.NoError(t, err)
	assert.Equal(t, "Space Quiz", artifact.Title)
}

func TestParseOutputMissingSections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"no title", "DESCRIPTION: d\nCODE_START\nx\nCODE_END\nDATA_START\n{}\nDATA_END"},
		{"no description", "TITLE: t\nCODE_START\nx\nCODE_END\nDATA_START\n{}\nDATA_END"},
		{"no code end", "TITLE: t\nDESCRIPTION: d\nCODE_START\nx\nDATA_START\n{}\nDATA_END"},
		{"empty code", "TITLE: t\nDESCRIPTION: d\nCODE_START\nCODE_END\nDATA_START\n{}\nDATA_END"},
		{"no data block", "TITLE: t\nDESCRIPTION: d\nCODE_START\nx\nCODE_END"},
		{"data not json", "TITLE: t\nDESCRIPTION: d\nCODE_START\nx\nCODE_END\nDATA_START\nnot json\nDATA_END"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOutput(tt.raw, models.GameTypeQuiz)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeGenerationInvalidOutput, errors.CodeOf(err))
		})
	}
}

func TestParseOutputToleratesIndentedMarkers(t *testing.T) {
	raw := "TITLE: t\nDESCRIPTION: d\n  CODE_START\nsome code with game-container\n  CODE_END\nDATA_START\n{}\nDATA_END"
	artifact, err := ParseOutput(raw, models.GameTypeGeneric)
	require.NoError(t, err)
	assert.Contains(t, artifact.Code, "some code")
}
