// internal/models/artifact.go
package models

// Artifact is the final generated output returned to a caller: runnable game
// code plus the structured data document the code reads at runtime.
//
// The Code field is bound by the execution environment's contract: it must not
// contain static-import syntax (only pre-loaded globals are available) and it
// must attach its rendering root to the named container element, never to the
// document root.
type Artifact struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Code        string                 `json:"code"`
	GameData    map[string]interface{} `json:"gameData"`
	Type        GameType               `json:"gameType"`

	// Degraded marks artifacts produced by the fallback synthesizer rather
	// than the generator. The job still finalizes ready; the flag exists so
	// silent quality degradation stays observable.
	Degraded bool `json:"degraded"`
}

// GenerationRequest is one caller submission, consumed once by the pipeline.
type GenerationRequest struct {
	Prompt    string `json:"prompt"`
	Requester string `json:"requester,omitempty"`
}
