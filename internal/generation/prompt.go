// internal/generation/prompt.go

// Package generation turns a retrieval result into a validated game artifact,
// calling the generative model and enforcing the output contract. When the
// model cannot deliver, the fallback synthesizer produces a playable
// degraded artifact instead.
package generation

import (
	"fmt"
	"strings"

	"gameforge/internal/models"
)

// Output delimiters the model is instructed to emit. The parser below is the
// single consumer of this format.
const (
	titleMarker       = "TITLE:"
	descriptionMarker = "DESCRIPTION:"
	codeStartMarker   = "CODE_START"
	codeEndMarker     = "CODE_END"
	dataStartMarker   = "DATA_START"
	dataEndMarker     = "DATA_END"
)

const systemInstruction = `You are a game generator. You produce complete, self-contained browser games
using the PIXI global (PixiJS is already loaded on the page).

Hard rules for the generated code:
- Plain JavaScript only. No import, require or export statements.
- The game must attach its canvas to the element with id "game-container":
  document.getElementById('game-container').appendChild(app.view);
- All tunable content (questions, levels, colors, timings) must be read from
  the global GAME_DATA object, never hard-coded.
- The game must be playable immediately, with no build step and no external
  assets.

Respond in EXACTLY this format, with no markdown fences and no extra prose:

TITLE: <one line game title>
DESCRIPTION: <one line description>
CODE_START
<the complete JavaScript source>
CODE_END
DATA_START
<the GAME_DATA document as strict JSON>
DATA_END`

// BuildUserPrompt renders the user message: the player's request, the
// detected type and the retrieved reference templates.
func BuildUserPrompt(prompt string, retrieval models.RetrievalResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Player request: %s\n\n", prompt)
	fmt.Fprintf(&b, "Detected game type: %s (confidence %.2f)\n\n", retrieval.DetectedType, retrieval.Confidence)

	if retrieval.Context != "" {
		b.WriteString("Use these reference templates as a starting point. Adapt them to the request;\n")
		b.WriteString("do not copy them verbatim.\n\n")
		b.WriteString(retrieval.Context)
	}

	return b.String()
}

// SystemInstruction returns the fixed system message for the completion call.
func SystemInstruction() string {
	return systemInstruction
}
