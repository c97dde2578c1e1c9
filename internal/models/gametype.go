// internal/models/gametype.go
package models

// GameType is the closed set of content types the pipeline can produce.
// Every template, classification result and fallback artifact carries one.
type GameType string

const (
	GameTypeQuiz       GameType = "quiz"
	GameTypePlatformer GameType = "platformer"
	GameTypePuzzle     GameType = "puzzle"
	GameTypeArcade     GameType = "arcade"
	GameTypeGeneric    GameType = "generic"
)

// AllGameTypes returns every supported type in a stable order.
func AllGameTypes() []GameType {
	return []GameType{
		GameTypeQuiz,
		GameTypePlatformer,
		GameTypePuzzle,
		GameTypeArcade,
		GameTypeGeneric,
	}
}

// ParseGameType maps a free-form label onto the closed set. Unknown labels
// collapse to GameTypeGeneric so downstream dispatch stays total.
func ParseGameType(label string) GameType {
	switch GameType(label) {
	case GameTypeQuiz, GameTypePlatformer, GameTypePuzzle, GameTypeArcade:
		return GameType(label)
	default:
		return GameTypeGeneric
	}
}

// Valid reports whether t is one of the supported types.
func (t GameType) Valid() bool {
	switch t {
	case GameTypeQuiz, GameTypePlatformer, GameTypePuzzle, GameTypeArcade, GameTypeGeneric:
		return true
	}
	return false
}

func (t GameType) String() string {
	return string(t)
}
