// pkg/registry/defaults.go
package registry

import (
	"gameforge/internal/models"
)

// Default returns the registry with the built-in game types. Fallback code is
// hand-verified against the runtime contract: no import syntax, rendering
// attached to the game-container element.
func Default() *TypeRegistry {
	r := NewTypeRegistry()
	r.Register(quizEntry())
	r.Register(platformerEntry())
	r.Register(puzzleEntry())
	r.Register(arcadeEntry())
	r.Register(genericEntry())
	return r
}

func quizEntry() Entry {
	return Entry{
		Type: models.GameTypeQuiz,
		KeywordGroups: [][]string{
			{"quiz", "trivia", "questionnaire"},
			{"question", "test", "exam", "knowledge"},
		},
		GameDataSchema: `{
			"type": "object",
			"required": ["questions"],
			"properties": {
				"questions": {
					"type": "array",
					"minItems": 1,
					"items": {
						"type": "object",
						"required": ["question", "answers", "correctIndex"],
						"properties": {
							"question": {"type": "string", "minLength": 1},
							"answers": {
								"type": "array",
								"minItems": 2,
								"items": {"type": "string"}
							},
							"correctIndex": {"type": "integer", "minimum": 0}
						}
					}
				}
			}
		}`,
		Fallback: FallbackSpec{
			Title:       "Quick Quiz",
			Description: "A simple multiple-choice quiz game",
			Code:        quizFallbackCode,
			GameData: map[string]interface{}{
				"questions": []interface{}{
					map[string]interface{}{
						"question":     "Which answer is the first one?",
						"answers":      []interface{}{"This one", "The second", "The third", "The fourth"},
						"correctIndex": 0,
					},
					map[string]interface{}{
						"question":     "How many choices does each question have?",
						"answers":      []interface{}{"Two", "Four", "Six", "Eight"},
						"correctIndex": 1,
					},
					map[string]interface{}{
						"question":     "What do you earn for a correct answer?",
						"answers":      []interface{}{"Nothing", "A life", "Points", "A hint"},
						"correctIndex": 2,
					},
				},
			},
		},
	}
}

func platformerEntry() Entry {
	return Entry{
		Type: models.GameTypePlatformer,
		KeywordGroups: [][]string{
			{"platform", "platformer", "side-scroller", "mario"},
			{"jump", "run", "gravity"},
		},
		GameDataSchema: `{
			"type": "object",
			"required": ["levels"],
			"properties": {
				"levels": {
					"type": "array",
					"minItems": 1,
					"items": {
						"type": "object",
						"required": ["platforms"],
						"properties": {
							"platforms": {
								"type": "array",
								"minItems": 1,
								"items": {
									"type": "object",
									"required": ["x", "y", "width", "height"],
									"properties": {
										"x": {"type": "number"},
										"y": {"type": "number"},
										"width": {"type": "number"},
										"height": {"type": "number"}
									}
								}
							}
						}
					}
				}
			}
		}`,
		Fallback: FallbackSpec{
			Title:       "Platform Hopper",
			Description: "A minimal jump-and-run across floating platforms",
			Code:        platformerFallbackCode,
			GameData: map[string]interface{}{
				"levels": []interface{}{
					map[string]interface{}{
						"name": "Level 1",
						"platforms": []interface{}{
							map[string]interface{}{"x": 0, "y": 550, "width": 800, "height": 50},
							map[string]interface{}{"x": 150, "y": 430, "width": 180, "height": 20},
							map[string]interface{}{"x": 430, "y": 330, "width": 180, "height": 20},
						},
					},
				},
			},
		},
	}
}

func puzzleEntry() Entry {
	return Entry{
		Type: models.GameTypePuzzle,
		KeywordGroups: [][]string{
			{"puzzle", "match", "tile"},
			{"brain", "logic", "memory"},
		},
		GameDataSchema: `{
			"type": "object",
			"required": ["gridSize", "colors"],
			"properties": {
				"gridSize": {"type": "integer", "minimum": 2},
				"colors": {
					"type": "array",
					"minItems": 3,
					"items": {"type": "string"}
				}
			}
		}`,
		Fallback: FallbackSpec{
			Title:       "Color Match",
			Description: "Match adjacent tiles of the same color",
			Code:        puzzleFallbackCode,
			GameData: map[string]interface{}{
				"gridSize": 4,
				"colors":   []interface{}{"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#F7DC6F"},
			},
		},
	}
}

func arcadeEntry() Entry {
	return Entry{
		Type: models.GameTypeArcade,
		KeywordGroups: [][]string{
			{"arcade", "clicker", "retro", "classic"},
			{"reaction", "fast-paced", "timed", "score"},
		},
		GameDataSchema: `{
			"type": "object",
			"required": ["duration"],
			"properties": {
				"duration": {"type": "number", "minimum": 5},
				"targetCount": {"type": "integer", "minimum": 1}
			}
		}`,
		Fallback: FallbackSpec{
			Title:       "Target Rush",
			Description: "Click as many targets as you can before time runs out",
			Code:        arcadeFallbackCode,
			GameData: map[string]interface{}{
				"duration":    30,
				"targetCount": 3,
			},
		},
	}
}

func genericEntry() Entry {
	return Entry{
		Type:          models.GameTypeGeneric,
		KeywordGroups: nil,
		GameDataSchema: `{
			"type": "object"
		}`,
		Fallback: FallbackSpec{
			Title:       "Bouncer",
			Description: "A small interactive toy while we could not build anything fancier",
			Code:        genericFallbackCode,
			GameData: map[string]interface{}{
				"theme": "bouncing shapes",
			},
		},
	}
}
