package prompts

import (
	"fmt"
	"strings"

	"github.com/scholium-io/linnaeus/internal/taxonomy"
)

// ComposeScore builds the full scoring prompt for one candidate discipline:
// stage instructions, response spec, the discipline under assessment, and the
// paper excerpt.
func ComposeScore(d taxonomy.Discipline, excerpt string) (string, error) {
	instructions, err := Instructions(StageScore)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", StageScore, err)
	}

	spec, err := Spec(StageScore)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", StageScore, err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)
	sb.WriteString("\n\nCandidate discipline: ")
	sb.WriteString(d.Name)
	sb.WriteString("\nDescription: ")
	sb.WriteString(d.Description)
	sb.WriteString("\nCharacteristic vocabulary: ")
	sb.WriteString(strings.Join(d.Keywords, ", "))
	sb.WriteString("\n\nPaper content:\n\n")
	sb.WriteString(excerpt)

	return sb.String(), nil
}
