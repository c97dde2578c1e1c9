// internal/generation/parser.go
package generation

import (
	"encoding/json"
	"strings"

	"gameforge/internal/common/errors"
	"gameforge/internal/models"
)

// ParseOutput extracts an artifact from the delimited model output. Every
// missing or malformed section is a contract violation, reported as
// GENERATION_INVALID_OUTPUT so the caller can fall back.
func ParseOutput(raw string, gameType models.GameType) (models.Artifact, error) {
	// Models occasionally wrap the whole response in a markdown fence
	// despite instructions; strip it before parsing.
	raw = stripFences(raw)

	title := extractLine(raw, titleMarker)
	if title == "" {
		return models.Artifact{}, errors.NewGenerationInvalidOutputError("missing TITLE section")
	}

	description := extractLine(raw, descriptionMarker)
	if description == "" {
		return models.Artifact{}, errors.NewGenerationInvalidOutputError("missing DESCRIPTION section")
	}

	code, ok := extractBlock(raw, codeStartMarker, codeEndMarker)
	if !ok || strings.TrimSpace(code) == "" {
		return models.Artifact{}, errors.NewGenerationInvalidOutputError("missing or empty code block")
	}

	dataRaw, ok := extractBlock(raw, dataStartMarker, dataEndMarker)
	if !ok {
		return models.Artifact{}, errors.NewGenerationInvalidOutputError("missing game data block")
	}

	var gameData map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(dataRaw)), &gameData); err != nil {
		return models.Artifact{}, errors.NewGenerationInvalidOutputError("game data is not valid JSON: " + err.Error())
	}

	return models.Artifact{
		Title:       title,
		Description: description,
		Code:        strings.TrimSpace(code) + "\n",
		GameData:    gameData,
		Type:        gameType,
	}, nil
}

// extractLine returns the remainder of the first line starting with marker.
func extractLine(raw, marker string) string {
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, marker) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
		}
	}
	return ""
}

// extractBlock returns the text between the start and end marker lines.
func extractBlock(raw, start, end string) (string, bool) {
	startIdx := indexOfMarkerLine(raw, start)
	if startIdx < 0 {
		return "", false
	}
	rest := raw[startIdx:]
	// Skip past the marker's own line.
	nl := strings.Index(rest, "\n")
	if nl < 0 {
		return "", false
	}
	rest = rest[nl+1:]

	endIdx := indexOfMarkerLine(rest, end)
	if endIdx < 0 {
		return "", false
	}
	return rest[:endIdx], true
}

// indexOfMarkerLine finds the byte offset of a line that equals marker after
// trimming, so indented or space-padded markers still count.
func indexOfMarkerLine(raw, marker string) int {
	offset := 0
	for _, line := range strings.SplitAfter(raw, "\n") {
		if strings.TrimSpace(line) == marker {
			return offset
		}
		offset += len(line)
	}
	return -1
}

func stripFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return raw
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	// Drop an optional language tag on the fence line.
	if nl := strings.Index(trimmed, "\n"); nl >= 0 {
		trimmed = trimmed[nl+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return trimmed
}
