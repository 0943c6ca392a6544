package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"career-roadmap-generator/internal/roadmap"
)

type mockUseCase struct {
	generateOut  roadmap.GenerateOutput
	generateErr  error
	parseOut     roadmap.ParseTimeOutput
	parseErr     error
	pingOut      roadmap.PingOutput
	pingErr      error
	lastGenerate roadmap.GenerateInput
}

func (m *mockUseCase) Generate(ctx context.Context, in roadmap.GenerateInput) (roadmap.GenerateOutput, error) {
	m.lastGenerate = in
	return m.generateOut, m.generateErr
}

func (m *mockUseCase) ParseTime(ctx context.Context, in roadmap.ParseTimeInput) (roadmap.ParseTimeOutput, error) {
	return m.parseOut, m.parseErr
}

func (m *mockUseCase) Ping(ctx context.Context) (roadmap.PingOutput, error) {
	return m.pingOut, m.pingErr
}

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                   {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Info(ctx context.Context, arg ...any)                    {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                    {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Error(ctx context.Context, arg ...any)                   {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                   {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func newTestRouter(uc roadmap.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(noopLogger{}, uc)

	// Register without the rate limiter so tests exercise handlers directly.
	rg := r.Group("")
	rg.POST("/generate-roadmap", h.Generate)
	rg.POST("/parse-time", h.ParseTime)
	rg.GET("/career-options", h.CareerOptions)
	rg.GET("/time-formats", h.TimeFormats)
	rg.GET("/test-groq", h.TestLLM)
	return r
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return w, env
}

func TestGenerate_OK(t *testing.T) {
	uc := &mockUseCase{
		generateOut: roadmap.GenerateOutput{
			SkillGaps:         []string{"Go", "SQL"},
			EstimatedDuration: "Flexible timeline based on 100 total hours",
		},
	}
	r := newTestRouter(uc)

	w, env := doJSON(t, r, http.MethodPost, "/generate-roadmap",
		`{"target_role": "Backend Developer", "experience_level": "beginner", "total_time": "100 hours"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if env.ErrorCode != 0 {
		t.Errorf("error_code = %d, want 0", env.ErrorCode)
	}
	if uc.lastGenerate.TargetRole != "Backend Developer" || uc.lastGenerate.TotalTime != "100 hours" {
		t.Errorf("unexpected usecase input: %+v", uc.lastGenerate)
	}

	var out roadmap.GenerateOutput
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if len(out.SkillGaps) != 2 || out.SkillGaps[0] != "Go" {
		t.Errorf("unexpected skill gaps: %v", out.SkillGaps)
	}
}

func TestGenerate_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Missing Target Role", `{"experience_level": "beginner", "total_time": "100 hours"}`},
		{"Missing Total Time", `{"target_role": "Backend Developer", "experience_level": "beginner"}`},
		{"Unknown Experience Level", `{"target_role": "Backend Developer", "experience_level": "wizard", "total_time": "2 weeks"}`},
		{"Not JSON", `time is an illusion`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			r := newTestRouter(uc)

			w, env := doJSON(t, r, http.MethodPost, "/generate-roadmap", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if env.ErrorCode == 0 {
				t.Errorf("expected non-zero error_code")
			}
		})
	}
}

func TestGenerate_UseCaseError(t *testing.T) {
	uc := &mockUseCase{generateErr: context.DeadlineExceeded}
	r := newTestRouter(uc)

	w, env := doJSON(t, r, http.MethodPost, "/generate-roadmap",
		`{"target_role": "Backend Developer", "experience_level": "beginner", "total_time": "100 hours"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if env.Message == context.DeadlineExceeded.Error() {
		t.Errorf("internal error detail must not leak to the client")
	}
}

func TestParseTime_OK(t *testing.T) {
	uc := &mockUseCase{
		parseOut: roadmap.ParseTimeOutput{
			OriginalInput: "2 months",
			TotalHours:    320,
		},
	}
	r := newTestRouter(uc)

	w, env := doJSON(t, r, http.MethodPost, "/parse-time", `{"time": "2 months"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var out roadmap.ParseTimeOutput
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if out.TotalHours != 320 || out.OriginalInput != "2 months" {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestParseTime_MissingField(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w, _ := doJSON(t, r, http.MethodPost, "/parse-time", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCareerOptions(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w, env := doJSON(t, r, http.MethodGet, "/career-options", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var out careerOptionsResp
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if len(out.Roles) != 8 {
		t.Errorf("expected 8 roles, got %d", len(out.Roles))
	}
	if out.Roles[0].Title != "Frontend Developer" {
		t.Errorf("first role = %q", out.Roles[0].Title)
	}
}

func TestTimeFormats(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w, env := doJSON(t, r, http.MethodGet, "/time-formats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var out timeFormatsResp
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if out.Limits["minimum"] != "10 hours" || out.Limits["maximum"] != "2000 hours" {
		t.Errorf("unexpected limits: %v", out.Limits)
	}
	if len(out.SupportedFormats) == 0 {
		t.Error("expected supported formats")
	}
}

func TestTestLLM(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{
			pingOut: roadmap.PingOutput{
				Response: "Groq connection successful!",
				Provider: "groq",
				Model:    "llama-3.3-70b-versatile",
			},
		}
		r := newTestRouter(uc)

		w, env := doJSON(t, r, http.MethodGet, "/test-groq", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var out testLLMResp
		if err := json.Unmarshal(env.Data, &out); err != nil {
			t.Fatalf("decoding data: %v", err)
		}
		if out.Status != "success" || out.Model != "llama-3.3-70b-versatile" {
			t.Errorf("unexpected payload: %+v", out)
		}
		if out.Timestamp == "" {
			t.Error("expected timestamp")
		}
	})

	t.Run("Provider Down", func(t *testing.T) {
		uc := &mockUseCase{pingErr: roadmap.ErrLLMUnavailable}
		r := newTestRouter(uc)

		w, env := doJSON(t, r, http.MethodGet, "/test-groq", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 with error payload", w.Code)
		}

		var out testLLMResp
		if err := json.Unmarshal(env.Data, &out); err != nil {
			t.Fatalf("decoding data: %v", err)
		}
		if out.Status != "error" || out.Error == "" {
			t.Errorf("unexpected payload: %+v", out)
		}
	})
}
