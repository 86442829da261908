package assistant_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-payroll/internal/assistant"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAssistantService struct {
	generateFn func(ctx context.Context, req assistant.AIRequest) assistant.AIResponse
}

func (f *fakeAssistantService) Generate(ctx context.Context, req assistant.AIRequest) assistant.AIResponse {
	return f.generateFn(ctx, req)
}

func TestAssistantHandler_Generate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAssistantService{
			generateFn: func(ctx context.Context, req assistant.AIRequest) assistant.AIResponse {
				assert.Equal(t, "email_template", req.RequestType)
				assert.Equal(t, "salary credit", req.Context)
				return assistant.AIResponse{
					RequestType:   req.RequestType,
					GeneratedText: "Subject: Salary Credit Confirmation",
				}
			},
		}

		h := assistant.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"request_type":"email_template","context":"salary credit"}`
		req := httptest.NewRequest(http.MethodPost, "/ai-assistant", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Generate(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Salary Credit Confirmation")
	})

	t.Run("missing required fields", func(t *testing.T) {
		h := assistant.NewHandler(&fakeAssistantService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/ai-assistant", strings.NewReader(`{"request_type":"policy"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Generate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
