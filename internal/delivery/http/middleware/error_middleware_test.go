package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardmatch/config"
	"cardmatch/internal/delivery/http/response"
	domainerrors "cardmatch/internal/domain/errors"
	"cardmatch/internal/errors"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func newTestErrorMiddleware(debug bool) *ErrorMiddleware {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewErrorMiddleware(cfg, logger)
}

func TestHandleHTTPError_OperationalFailure(t *testing.T) {
	m := newTestErrorMiddleware(false)
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrInvalidCredentials, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, response.StatusFail, body.Status)
	assert.Equal(t, "Invalid credentials.", body.Message)
	assert.Empty(t, body.Stack)
}

func TestHandleHTTPError_ProgrammingFailureHidesDetail(t *testing.T) {
	m := newTestErrorMiddleware(false)
	c, rec := newErrorTestContext(t)

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "list offers")
	m.HandleHTTPError(dbErr, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, response.StatusError, body.Status)
	assert.Equal(t, "Internal server error.", body.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestHandleHTTPError_UnknownErrorBecomesInternal(t *testing.T) {
	m := newTestErrorMiddleware(false)
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("something broke"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, response.StatusError, body.Status)
	assert.NotContains(t, body.Message, "something broke")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	m := newTestErrorMiddleware(false)
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "route not found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, response.StatusFail, body.Status)
	assert.Equal(t, "route not found", body.Message)
}

func TestHandleHTTPError_StackOnlyInDebug(t *testing.T) {
	wrapped := domainerrors.ErrUserNotFound.WrapMessage("loading profile")

	prod := newTestErrorMiddleware(false)
	c, rec := newErrorTestContext(t)
	prod.HandleHTTPError(wrapped, c)
	assert.Empty(t, decodeErrorBody(t, rec).Stack)

	debug := newTestErrorMiddleware(true)
	c, rec = newErrorTestContext(t)
	debug.HandleHTTPError(wrapped, c)
	assert.NotEmpty(t, decodeErrorBody(t, rec).Stack)
}
