package prompts

const scoreSpec = `Respond with a JSON object matching this exact structure:

{
  "score": 0.0,
  "evidence": "<verbatim passage>"
}

Field constraints:
- score: Relevance of the paper to the candidate discipline as a number
  between 0.0 and 1.0. Use 0.0 for no substantive engagement, values
  below 0.3 for tangential mentions, 0.3 to 0.7 for a secondary theme,
  and above 0.7 when the discipline is central to the paper.
- evidence: A short passage copied verbatim from the provided paper
  content that best supports the score. Do not paraphrase, summarize,
  or invent text that does not appear in the content.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Assess only the single discipline named in the prompt
- Base the score solely on the provided content`

var specs = map[Stage]string{
	StageScore: scoreSpec,
}

// Spec returns the response specification for an inference stage.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
