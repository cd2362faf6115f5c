// Package basehdl - Test format response envelope thống nhất qua fiber app.
package basehdl

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"report_hub/internal/common"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/test", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err, "app.Test không được lỗi")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &parsed), "response phải là JSON hợp lệ")
	return resp.StatusCode, parsed
}

func TestHandleResponse_ThanhCong(t *testing.T) {
	status, body := doRequest(t, func(c fiber.Ctx) error {
		HandleResponse(c, fiber.Map{"name": "general"}, nil)
		return nil
	})

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, common.MsgSuccess, body["message"])
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "data phải là object")
	assert.Equal(t, "general", data["name"])
}

func TestHandleResponse_CustomError_GiuStatusCode(t *testing.T) {
	status, body := doRequest(t, func(c fiber.Ctx) error {
		HandleResponse(c, nil, common.ErrCategoryNotFound)
		return nil
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, common.ErrCodeBusinessState.Code, body["code"])
	assert.Contains(t, body["message"], "Danh mục")
}

func TestHandleResponse_SummarizerUnavailable_503(t *testing.T) {
	status, body := doRequest(t, func(c fiber.Ctx) error {
		HandleResponse(c, nil, common.ErrSummarizerUnavailable)
		return nil
	})

	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, common.ErrCodeAIProvider.Code, body["code"])
}

func TestHandleResponse_LoiThuong_Tra500(t *testing.T) {
	status, body := doRequest(t, func(c fiber.Ctx) error {
		HandleResponse(c, nil, errors.New("some internal failure"))
		return nil
	})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "some internal failure", body["message"])
}

func TestSafeHandler_BatPanic(t *testing.T) {
	h := newTestHandler()
	status, body := doRequest(t, func(c fiber.Ctx) error {
		return h.SafeHandler(c, func() error {
			panic("boom")
		})
	})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "error", body["status"])
	assert.Contains(t, body["message"], "boom")
}
