package llm

import "fmt"

const (
	// SystemPrompt frames chat-style providers.
	SystemPrompt = "You are a helpful assistant that analyzes prompts and suggests appropriate titles and tags. Always respond with valid JSON."

	maxPromptContent = 500
)

const suggestTemplate = `Analyze the following %s prompt and suggest:
1. A concise, descriptive title (max 50 characters)
2. 2-4 relevant tags

Content:
"%s"

Please respond with JSON in this exact format:
{
  "title": "suggested title",
  "tags": ["tag1", "tag2", "tag3"]
}`

// BuildPrompt wraps content in the suggestion instructions. Content longer
// than 500 characters is cut and marked with "...".
func BuildPrompt(content, language string) string {
	if language == "" {
		language = "text"
	}

	runes := []rune(content)
	if len(runes) > maxPromptContent {
		content = string(runes[:maxPromptContent]) + "..."
	}

	return fmt.Sprintf(suggestTemplate, language, content)
}
