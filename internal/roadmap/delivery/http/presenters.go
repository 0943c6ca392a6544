package http

import (
	"career-roadmap-generator/internal/roadmap"
)

// --- Request DTOs ---

type generateReq struct {
	TargetRole      string `json:"target_role"      binding:"required,min=1,max=255"`
	ExperienceLevel string `json:"experience_level" binding:"required,oneof=beginner intermediate advanced"`
	TotalTime       string `json:"total_time"       binding:"required,min=1,max=100"`
}

func (r generateReq) validate() error { return nil }

func (r generateReq) toInput() roadmap.GenerateInput {
	return roadmap.GenerateInput{
		TargetRole:      r.TargetRole,
		ExperienceLevel: r.ExperienceLevel,
		TotalTime:       r.TotalTime,
	}
}

// ---

type parseTimeReq struct {
	Time string `json:"time" binding:"required,min=1,max=100"`
}

func (r parseTimeReq) validate() error { return nil }

func (r parseTimeReq) toInput() roadmap.ParseTimeInput {
	return roadmap.ParseTimeInput{Time: r.Time}
}

// --- Response DTOs ---

// The generate and parse-time payloads are the domain types themselves; their
// JSON tags already define the wire shape, so no mapping layer is needed.

type testLLMResp struct {
	Status    string `json:"status"`
	Response  string `json:"response,omitempty"`
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

func (h *handler) newTestLLMResp(out roadmap.PingOutput, ts string) testLLMResp {
	return testLLMResp{
		Status:    "success",
		Response:  out.Response,
		Provider:  out.Provider,
		Model:     out.Model,
		Timestamp: ts,
	}
}
