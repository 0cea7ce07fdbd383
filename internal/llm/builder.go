package llm

import (
	"fmt"
	"strings"

	"github.com/deepakkumardewani/review-pilot/internal/core"
)

// System instructions for the three invocation modes.
const (
	ReviewerSystemInstruction = "You are an expert code reviewer. Provide comprehensive, actionable feedback in markdown format. Focus on security, performance, maintainability, and best practices."

	AgentSystemInstruction = "You are a specialized code review agent. Provide detailed, actionable feedback in markdown format. Focus exclusively on your domain only."

	SynthesisSystemInstruction = "You are a technical lead synthesizing multiple specialized code reviews into one prioritized report. Preserve all Current Code and Suggested Fix blocks exactly as written. Provide the final report in markdown format."
)

type promptData struct {
	Language        string
	FileContent     string
	FileContext     string
	RepoContext     string
	Conventions     string
	ContextGuidance string
	HasEmbedding    bool
}

type synthesisSection struct {
	Index  int
	Label  string
	Review string
}

type synthesisData struct {
	Sections []synthesisSection
}

// Builder renders the review prompts. All methods are pure string
// templating; no network access.
type Builder struct {
	pm       *PromptManager
	provider ModelProvider
}

func NewBuilder(pm *PromptManager, provider string) *Builder {
	mp := ModelProvider(provider)
	if mp == "" {
		mp = DefaultProvider
	}
	return &Builder{pm: pm, provider: mp}
}

// CodeReview renders the general single-agent review prompt.
func (b *Builder) CodeReview(req core.ReviewRequest) (string, error) {
	return b.pm.Render(CodeReviewPrompt, b.provider, b.dataFor(req, len(req.Embedding) > 0))
}

// AgentReview renders the domain-specific prompt for one agent. The
// embedding never feeds agent prompts.
func (b *Builder) AgentReview(agent core.AgentType, req core.ReviewRequest) (string, error) {
	key, err := AgentPromptKey(agent)
	if err != nil {
		return "", err
	}
	return b.pm.Render(key, b.provider, b.dataFor(req, false))
}

// Synthesis renders the merge prompt from the per-agent reviews, in the
// order given. Labels are upper-cased for the section headings.
func (b *Builder) Synthesis(reviews []core.AgentReview) (string, error) {
	if len(reviews) == 0 {
		return "", fmt.Errorf("synthesis requires at least one agent review")
	}

	data := synthesisData{Sections: make([]synthesisSection, 0, len(reviews))}
	for i, r := range reviews {
		data.Sections = append(data.Sections, synthesisSection{
			Index:  i + 1,
			Label:  strings.ToUpper(r.Type.Label()),
			Review: r.Review,
		})
	}

	return b.pm.Render(SynthesisPrompt, b.provider, data)
}

func (b *Builder) dataFor(req core.ReviewRequest, hasEmbedding bool) promptData {
	return promptData{
		Language:        req.Language,
		FileContent:     req.FileContent,
		FileContext:     string(req.FileContext),
		RepoContext:     req.RepoContext,
		Conventions:     ConventionsForLanguage(req.Language),
		ContextGuidance: GuidanceForContext(req.FileContext),
		HasEmbedding:    hasEmbedding,
	}
}
