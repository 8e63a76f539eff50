package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/promptvault/internal/core"
)

const previewLength = 60

type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Success(message string) string {
	return SuccessStyle.Render("✓ "+message) + "\n"
}

func (f *Formatter) Warn(message string) string {
	return WarnStyle.Render("! "+message) + "\n"
}

func (f *Formatter) Error(err error) string {
	return ErrorStyle.Render("✗ Error") + "  " + err.Error() + "\n"
}

func (f *Formatter) Label(label, value string) string {
	return fmt.Sprintf("%s  ›  %s\n", UsageStyle.Render(label), value)
}

func (f *Formatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("› %s\n", item))
	}
	return sb.String()
}

func (f *Formatter) Tip(text string) string {
	return DescStyle.Render("Tip: "+text) + "\n"
}

func (f *Formatter) Tags(tags []string) string {
	if len(tags) == 0 {
		return DescStyle.Render("(no tags)")
	}
	rendered := make([]string, len(tags))
	for i, t := range tags {
		rendered[i] = TagStyle.Render("#" + t)
	}
	return strings.Join(rendered, " ")
}

// PromptLine is the one-line summary used by listings.
func (f *Formatter) PromptLine(p core.Prompt) string {
	return fmt.Sprintf("%s  %s  %s\n    %s\n",
		IDStyle.Render(p.ID),
		p.Title,
		f.Tags(p.Tags),
		DescStyle.Render(Preview(p.Content, previewLength)),
	)
}

func (f *Formatter) PromptList(prompts []core.Prompt) string {
	if len(prompts) == 0 {
		return DescStyle.Render("No prompts found.") + "\n"
	}

	var sb strings.Builder
	for _, p := range prompts {
		sb.WriteString(f.PromptLine(p))
	}
	sb.WriteString(DescStyle.Render(fmt.Sprintf("%d prompt(s)", len(prompts))) + "\n")
	return sb.String()
}

func (f *Formatter) PromptDetail(p core.Prompt) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(p.Title) + "\n")
	sb.WriteString(f.Label("ID", p.ID))
	sb.WriteString(f.Label("Tags", f.Tags(p.Tags)))
	sb.WriteString(f.Label("Language", p.Language))
	sb.WriteString(f.Label("Source", p.Source))
	if p.Context != "" {
		sb.WriteString(f.Label("Context", p.Context))
	}
	sb.WriteString(f.Label("Created", p.CreatedAt.Local().Format(time.DateTime)))
	sb.WriteString(f.Label("Updated", p.UpdatedAt.Local().Format(time.DateTime)))
	sb.WriteString("\n" + ContentStyle.Render(p.Content) + "\n")
	return sb.String()
}

func (f *Formatter) Suggestions(s *core.Suggestions, origin string) string {
	var sb strings.Builder
	sb.WriteString(f.Label("Title", s.Title))
	sb.WriteString(f.Label("Tags", f.Tags(s.Tags)))
	sb.WriteString(DescStyle.Render("source: "+origin) + "\n")
	return sb.String()
}

func (f *Formatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}

// Preview flattens content to a single line of at most n runes.
func Preview(content string, n int) string {
	flat := strings.Join(strings.Fields(content), " ")
	runes := []rune(flat)
	if len(runes) <= n {
		return flat
	}
	return string(runes[:n]) + "…"
}
