package openai

import (
	"github.com/tmc/langchaingo/prompts"
)

const draftResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "summary": {"type": "string"},
    "objectives": {"type": "array", "items": {"type": "string"}},
    "activities": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "minutes": {"type": "integer", "minimum": 1},
          "description": {"type": "string"}
        },
        "required": ["name", "minutes", "description"],
        "additionalProperties": false
      }
    },
    "virtues": {"type": "array", "items": {"type": "string"}}
  },
  "required": ["title", "summary", "objectives", "activities", "virtues"],
  "additionalProperties": false
}`

var systemPrompt = prompts.PromptTemplate{
	Template: `You are an experienced teacher who designs lessons for peace education.
Write one new lesson sheet for the brief given by the user, taking the similar lessons
as models of tone, structure and level.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble,
explanation, greeting, or acknowledgment. Start your response directly with the opening brace {
and end with the closing brace }. Your output must exactly follow this schema:

{{.schema}}

Rules:
- The title must be new; never copy the title of an example.
- Activities must fit the duration of the brief when one is given; minutes are whole numbers.
- Adapt the vocabulary and the activities to the target age of the brief.
- List under "virtues" the virtues the lesson works on, using the names from the brief when possible.
- Write 2 to 4 objectives, each a single sentence.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`,
	InputVariables: []string{"schema"},
	TemplateFormat: prompts.TemplateFormatGoTemplate,
}

var userPrompt = prompts.PromptTemplate{
	Template: `Brief:
{{.brief}}
Similar lessons from the catalog ({{.count}}):
{{.examples}}`,
	InputVariables: []string{"brief", "examples", "count"},
	TemplateFormat: prompts.TemplateFormatGoTemplate,
}

// buildSystemPrompt renders the system prompt with the response schema embedded.
func buildSystemPrompt() (string, error) {
	return systemPrompt.Format(map[string]any{"schema": draftResponseSchema})
}

// buildUserPrompt renders the brief and its examples.
func buildUserPrompt(values map[string]any) (string, error) {
	return userPrompt.Format(values)
}
