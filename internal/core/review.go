// Package core defines the essential data structures shared across the
// application: review requests, agent types, and repository metadata. These
// types are designed to be passed by value so that no request state is shared
// between concurrent reviews.
package core

import "errors"

// ErrMissingFields is returned when a review request lacks one of the
// required fields: language, file content, file context, or repo context.
var ErrMissingFields = errors.New("required fields are missing")

// FileContext classifies the semantic role of a file within a repository.
type FileContext string

const (
	ContextFrontendComponent FileContext = "frontend-component"
	ContextFrontendPage      FileContext = "frontend-page"
	ContextBackendAPI        FileContext = "backend-api"
	ContextFrontendHook      FileContext = "frontend-hook"
	ContextUtility           FileContext = "utility"
	ContextStateManagement   FileContext = "state-management"
	ContextTest              FileContext = "test"
	ContextConfiguration     FileContext = "configuration"
	ContextGeneric           FileContext = "generic"
)

// AgentType identifies one of the specialized review personas.
type AgentType string

const (
	AgentSecurity        AgentType = "security"
	AgentPerformance     AgentType = "performance"
	AgentCodeStyle       AgentType = "codeStyle"
	AgentLogic           AgentType = "logic"
	AgentMaintainability AgentType = "maintainability"
)

// agentLabels maps each agent type to its human-readable label, used verbatim
// in synthesis prompts and client output.
var agentLabels = map[AgentType]string{
	AgentSecurity:        "Security Review Agent",
	AgentPerformance:     "Performance Review Agent",
	AgentCodeStyle:       "Code Style Review Agent",
	AgentLogic:           "Logic & Correctness Review Agent",
	AgentMaintainability: "Maintainability Review Agent",
}

// AllAgentTypes returns the fixed set of agent types in display order.
func AllAgentTypes() []AgentType {
	return []AgentType{
		AgentSecurity,
		AgentPerformance,
		AgentCodeStyle,
		AgentLogic,
		AgentMaintainability,
	}
}

// Label returns the human-readable name for the agent, or the raw type string
// if the agent is unknown.
func (a AgentType) Label() string {
	if label, ok := agentLabels[a]; ok {
		return label
	}
	return string(a)
}

// Valid reports whether the agent type is one of the fixed enumerated set.
func (a AgentType) Valid() bool {
	_, ok := agentLabels[a]
	return ok
}

// ReviewRequest carries everything the orchestrator needs to produce a review.
// It is constructed once per user action and passed by value.
type ReviewRequest struct {
	Language       string
	FileContent    string
	FileContext    FileContext
	RepoContext    string
	Embedding      []float32
	SelectedAgents []AgentType
}

// Validate enforces the required-field gate: language, file content, file
// context, and repo context must all be non-empty. SelectedAgents is optional;
// an empty set selects the single-agent path.
func (r ReviewRequest) Validate() error {
	if r.Language == "" || r.FileContent == "" || r.FileContext == "" || r.RepoContext == "" {
		return ErrMissingFields
	}
	return nil
}

// MultiAgent reports whether the request selects the multi-agent path.
func (r ReviewRequest) MultiAgent() bool {
	return len(r.SelectedAgents) > 0
}

// AgentReview holds the completed output of a single specialized agent. The
// slice of these produced by a multi-agent run preserves the request order of
// SelectedAgents regardless of completion order.
type AgentReview struct {
	Type   AgentType
	Review string
}

// SuggestionPair is a structured "current code / suggested fix" pair recovered
// from a review's markdown body. Both sides are trimmed; a pair whose sides
// are identical is never constructed.
type SuggestionPair struct {
	Current   string
	Suggested string
}

// RepoMetadata summarizes a repository's dependency manifest. A zero value is
// valid and means no metadata could be derived; review generation proceeds
// without enhanced context.
type RepoMetadata struct {
	Framework          string
	Dependencies       map[string]string
	DevDependencies    map[string]string
	PackageJSONContent string
}

// Empty reports whether no metadata was derived at all.
func (m RepoMetadata) Empty() bool {
	return m.Framework == "" && len(m.Dependencies) == 0 && len(m.DevDependencies) == 0 && m.PackageJSONContent == ""
}
