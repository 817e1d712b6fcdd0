package tutor

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/tsotne01/css-animation-mastery/internal/llm"
)

const systemPrompt = `You coach learners through short CSS animation exercises. You see the exercise, the learner's stylesheet and which checks still fail. Point at the next step in plain words. Never paste a complete solution.`

const failingHeader = "Checks still failing:"

// languageName returns the English name of a language code, such as
// "Georgian" for "ka".
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return "English"
	}
	return display.English.Tags().Name(tag)
}

func buildUserMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Exercise: %s\n", in.Title)
	if in.Subtitle != "" {
		fmt.Fprintf(&b, "Goal: %s\n", in.Subtitle)
	}
	if len(in.Requirements) > 0 {
		b.WriteString("\nRequirements:\n")
		for _, r := range in.Requirements {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}

	b.WriteString("\nLearner's CSS:\n```css\n")
	b.WriteString(in.Code)
	b.WriteString("\n```\n")

	b.WriteString("\n" + failingHeader + "\n")
	if len(in.Failing) == 0 {
		b.WriteString("None\n")
	}
	for _, f := range in.Failing {
		fmt.Fprintf(&b, "- %s\n", f)
	}

	fmt.Fprintf(&b, `
Instructions:
1. Answer in %s.
2. Address the first failing check. If nothing fails, suggest one polish step.
3. Keep the hint to one or two sentences.
4. The snippet, if any, is a single CSS declaration or selector line.`, languageName(in.Lang))

	return b.String()
}

// offlineResponse answers a hint request without a model: it repeats the
// first failing check from the prompt.
func offlineResponse(req llm.Request) llm.MockResponse {
	text := "Compare your stylesheet with the requirements and try one change at a time."
	if len(req.Messages) > 0 {
		if first, ok := firstFailing(req.Messages[len(req.Messages)-1].Content); ok {
			text = first
		}
	}
	out, _ := json.Marshal(hintOutput{Hint: text, Focus: []string{}, Snippet: ""})
	return llm.MockResponse{Content: out}
}

func firstFailing(prompt string) (string, bool) {
	_, rest, ok := strings.Cut(prompt, failingHeader+"\n")
	if !ok {
		return "", false
	}
	line, _, _ := strings.Cut(rest, "\n")
	item, ok := strings.CutPrefix(line, "- ")
	return item, ok
}
