package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/xiebiao/certainbookstore/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, map[string]int{"count": 2})

	body := decode(t, w)
	assert.EqualValues(t, 0, body["code"])
	assert.Equal(t, "success", body["message"])
	assert.Equal(t, map[string]any{"count": float64(2)}, body["data"])
}

func TestError_AppError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在").Withf("ISBN %d", 42))

	body := decode(t, w)
	assert.EqualValues(t, apperrors.ErrCodeBookNotFound, body["code"])
	assert.Equal(t, "图书不存在: ISBN 42", body["message"])
	assert.Nil(t, body["data"])
}

func TestError_InternalIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(RequestIDKey, "req-1")

	Error(c, errors.New("dial tcp: connection refused"))

	body := decode(t, w)
	assert.EqualValues(t, apperrors.ErrCodeInternal, body["code"])
	assert.Equal(t, "系统内部错误", body["message"], "不向客户端暴露内部错误")

	entries := logs.FilterMessage("request failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "req-1", entries[0].ContextMap()[RequestIDKey])
}

func TestErrorWithData(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	stockErr := apperrors.New(apperrors.ErrCodeInsufficientStock, "库存不足").WithErr(errors.New("ISBN 1 需要2 库存1"))
	ErrorWithData(c, stockErr, []int{1})

	body := decode(t, w)
	assert.EqualValues(t, apperrors.ErrCodeInsufficientStock, body["code"])
	assert.Equal(t, []any{float64(1)}, body["data"])
}

func TestError_RejectedLoggedAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	cause := errors.New("ISBN 1 需要2 库存1")
	Error(c, apperrors.New(apperrors.ErrCodeInsufficientStock, "库存不足").WithErr(cause))

	body := decode(t, w)
	assert.EqualValues(t, apperrors.ErrCodeInsufficientStock, body["code"])
	assert.Equal(t, "库存不足", body["message"])

	entries := logs.FilterMessage("request rejected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Zero(t, logs.FilterMessage("request failed").Len())
}
