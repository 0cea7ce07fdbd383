package llm

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/deepakkumardewani/review-pilot/internal/core"
)

//go:embed prompts/*.prompt
var promptFiles embed.FS

type ModelProvider string
type PromptKey string

const (
	DefaultProvider ModelProvider = "default"

	CodeReviewPrompt           PromptKey = "code_review"
	AgentSecurityPrompt        PromptKey = "agent_security"
	AgentPerformancePrompt     PromptKey = "agent_performance"
	AgentCodeStylePrompt       PromptKey = "agent_codestyle"
	AgentLogicPrompt           PromptKey = "agent_logic"
	AgentMaintainabilityPrompt PromptKey = "agent_maintainability"
	SynthesisPrompt            PromptKey = "synthesis"
)

var agentPromptKeys = map[core.AgentType]PromptKey{
	core.AgentSecurity:        AgentSecurityPrompt,
	core.AgentPerformance:     AgentPerformancePrompt,
	core.AgentCodeStyle:       AgentCodeStylePrompt,
	core.AgentLogic:           AgentLogicPrompt,
	core.AgentMaintainability: AgentMaintainabilityPrompt,
}

// AgentPromptKey maps an agent type to its dedicated prompt template key.
func AgentPromptKey(agent core.AgentType) (PromptKey, error) {
	key, ok := agentPromptKeys[agent]
	if !ok {
		return "", fmt.Errorf("no prompt template for agent type '%s'", agent)
	}
	return key, nil
}

// PromptManager loads and renders the embedded prompt templates. Templates
// are named 'key_provider.prompt' so a provider-specific variant can shadow
// the default one.
type PromptManager struct {
	prompts map[PromptKey]map[ModelProvider]*template.Template
}

func NewPromptManager() (*PromptManager, error) {
	pm := &PromptManager{
		prompts: make(map[PromptKey]map[ModelProvider]*template.Template),
	}

	files, err := promptFiles.ReadDir("prompts")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded prompts directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		fileName := file.Name()
		baseName := strings.TrimSuffix(fileName, filepath.Ext(fileName))
		lastUnderscore := strings.LastIndex(baseName, "_")
		if lastUnderscore <= 0 || lastUnderscore == len(baseName)-1 {
			return nil, fmt.Errorf("invalid prompt filename format: %s (expected 'key_provider.prompt')", fileName)
		}

		key := PromptKey(baseName[:lastUnderscore])
		provider := ModelProvider(baseName[lastUnderscore+1:])

		content, err := promptFiles.ReadFile("prompts/" + fileName)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded prompt file %s: %w", fileName, err)
		}

		tmpl, err := template.New(baseName).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse prompt template %s: %w", fileName, err)
		}

		if _, ok := pm.prompts[key]; !ok {
			pm.prompts[key] = make(map[ModelProvider]*template.Template)
		}
		pm.prompts[key][provider] = tmpl
	}

	return pm, nil
}

func (pm *PromptManager) Get(key PromptKey, provider ModelProvider) (*template.Template, error) {
	taskPrompts, ok := pm.prompts[key]
	if !ok {
		return nil, fmt.Errorf("no prompts found for key '%s'", key)
	}

	if tmpl, ok := taskPrompts[provider]; ok {
		return tmpl, nil
	}
	if tmpl, ok := taskPrompts[DefaultProvider]; ok {
		return tmpl, nil
	}

	return nil, fmt.Errorf("no template found for key '%s' and provider '%s', and no default was available", key, provider)
}

func (pm *PromptManager) Render(key PromptKey, provider ModelProvider, data any) (string, error) {
	tmpl, err := pm.Get(key, provider)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}
