package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lockfocus-assistant/internal/task"
	"lockfocus-assistant/internal/task/usecase"
	"lockfocus-assistant/internal/taskparser"
	pkgLog "lockfocus-assistant/pkg/log"
)

type failingUseCase struct{}

func (failingUseCase) Parse(ctx context.Context, input task.ParseInput) (task.ParseOutput, error) {
	return task.ParseOutput{}, errors.New("boom")
}

func newRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(pkgLog.NewNop(), uc))
	return r
}

func doParse(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/test/parse-tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestParseTasks_OK(t *testing.T) {
	r := newRouter(usecase.New(pkgLog.NewNop(), taskparser.New()))

	w := doParse(r, `{"message":"Buy groceries and pay the electricity bill"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ErrorCode int `json:"error_code"`
		Data      struct {
			Input       string `json:"input"`
			TasksFound  int    `json:"tasksFound"`
			Categorized struct {
				High   []map[string]any `json:"high"`
				Medium []map[string]any `json:"medium"`
				Urgent []map[string]any `json:"urgent"`
			} `json:"categorized"`
			Display string `json:"display"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Zero(t, body.ErrorCode)
	assert.Equal(t, 2, body.Data.TasksFound)
	assert.Len(t, body.Data.Categorized.High, 1)
	assert.Len(t, body.Data.Categorized.Medium, 1)
	assert.NotNil(t, body.Data.Categorized.Urgent)
	assert.Contains(t, body.Data.Display, "Pay the electricity bill")
}

func TestParseTasks_BadRequest(t *testing.T) {
	r := newRouter(usecase.New(pkgLog.NewNop(), taskparser.New()))

	for _, body := range []string{`{}`, `not json`, `{"message":""}`} {
		w := doParse(r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "message is required", body)
	}
}

func TestParseTasks_BlankMessage(t *testing.T) {
	r := newRouter(usecase.New(pkgLog.NewNop(), taskparser.New()))

	w := doParse(r, `{"message":"   "}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			TasksFound int              `json:"tasksFound"`
			Tasks      []map[string]any `json:"tasks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Zero(t, body.Data.TasksFound)
	assert.Empty(t, body.Data.Tasks)
}

func TestParseTasks_InternalError(t *testing.T) {
	w := doParse(newRouter(failingUseCase{}), `{"message":"buy milk"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}
