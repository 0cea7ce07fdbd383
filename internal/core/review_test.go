package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewRequestValidate(t *testing.T) {
	valid := ReviewRequest{
		Language:    "typescript",
		FileContent: "const x = 1;",
		FileContext: ContextUtility,
		RepoContext: "Project uses React framework.",
	}

	tests := []struct {
		name    string
		mutate  func(r *ReviewRequest)
		wantErr bool
	}{
		{name: "all fields present", mutate: func(_ *ReviewRequest) {}, wantErr: false},
		{name: "missing language", mutate: func(r *ReviewRequest) { r.Language = "" }, wantErr: true},
		{name: "missing file content", mutate: func(r *ReviewRequest) { r.FileContent = "" }, wantErr: true},
		{name: "missing file context", mutate: func(r *ReviewRequest) { r.FileContext = "" }, wantErr: true},
		{name: "missing repo context", mutate: func(r *ReviewRequest) { r.RepoContext = "" }, wantErr: true},
		{
			name:    "agents are optional",
			mutate:  func(r *ReviewRequest) { r.SelectedAgents = nil },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingFields)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAgentTypeLabel(t *testing.T) {
	assert.Equal(t, "Security Review Agent", AgentSecurity.Label())
	assert.Equal(t, "Logic & Correctness Review Agent", AgentLogic.Label())
	assert.Equal(t, "bogus", AgentType("bogus").Label())
}

func TestAgentTypeValid(t *testing.T) {
	for _, a := range AllAgentTypes() {
		assert.True(t, a.Valid(), string(a))
	}
	assert.False(t, AgentType("linting").Valid())
}

func TestMultiAgent(t *testing.T) {
	req := ReviewRequest{}
	assert.False(t, req.MultiAgent())
	req.SelectedAgents = []AgentType{AgentSecurity}
	assert.True(t, req.MultiAgent())
}
