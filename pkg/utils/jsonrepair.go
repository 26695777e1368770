package utils

import (
	"regexp"
	"strings"
)

// JSONRepairer repairs near-valid JSON emitted by a generation model before
// parsing.
type JSONRepairer interface {
	Repair(raw string) string
}

type heuristicRepairer struct{}

func NewHeuristicRepairer() JSONRepairer {
	return heuristicRepairer{}
}

var truncatedKeyRe = regexp.MustCompile(`"id"[:\s]*$`)

// Repair applies, in order: whitespace trim, fenced-block extraction, a narrow
// patch for output truncated right after an "id" key, and open/close count
// balancing for braces and brackets. Balancing only equalizes counts; it does
// not guarantee valid nesting, so parsing can still fail afterwards.
func (heuristicRepairer) Repair(raw string) string {
	content := strings.TrimSpace(raw)

	// Keep only the content between the first fence-open and the next
	// fence-close; without a closing fence the rest of the text is kept.
	if idx := strings.Index(content, "```"); idx != -1 {
		content = content[idx+len("```"):]
		content = strings.TrimPrefix(content, "json")
		if end := strings.Index(content, "```"); end != -1 {
			content = content[:end]
		}
	}

	content = strings.TrimSpace(content)

	if truncatedKeyRe.MatchString(content) {
		content += `": null }`
	}

	openBraces := strings.Count(content, "{")
	closeBraces := strings.Count(content, "}")
	openBrackets := strings.Count(content, "[")
	closeBrackets := strings.Count(content, "]")

	for openBraces > closeBraces {
		content += "}"
		closeBraces++
	}
	for openBrackets > closeBrackets {
		content += "]"
		closeBrackets++
	}

	return content
}
