package prompts

const scoreInstructions = `You are an academic discipline analyst assessing how relevant a single discipline is to a research paper.

You will be given the paper's most salient content (title and highest-signal sections) along with one candidate discipline, its description, and its characteristic vocabulary.

Assess the paper against that one discipline only:
- Judge topical relevance from the paper's actual subject matter, methods, and terminology, not from superficial keyword overlap
- A paper can be relevant to several disciplines; score this discipline on its own merits without ranking it against others
- Interdisciplinary work scores high for each discipline it substantively engages
- Passing mentions, citations, and boilerplate do not establish relevance

Support your score with evidence: a short verbatim passage from the provided content that best demonstrates the paper's engagement with this discipline.`

var instructions = map[Stage]string{
	StageScore: scoreInstructions,
}

// Instructions returns the instruction text for an inference stage.
// Returns ErrInvalidStage if the stage is not recognized.
func Instructions(stage Stage) (string, error) {
	text, ok := instructions[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
