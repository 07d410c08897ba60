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
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(t *testing.T, fn func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "http://example.com/api/property", nil)

	fn(c)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestStatusTextFollowsLeadingDigit(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{http.StatusOK, "success"},
		{http.StatusCreated, "success"},
		{299, "success"},
		{http.StatusMultipleChoices, "error"},
		{http.StatusNotFound, "error"},
		{http.StatusUnprocessableEntity, "error"},
		{http.StatusInternalServerError, "error"},
	}

	for _, tc := range cases {
		w, body := record(t, func(c *gin.Context) {
			JSON(c, "msg", gin.H{}, tc.code)
		})
		assert.Equal(t, tc.code, w.Code)
		assert.Equal(t, tc.want, body["status"], "code %d", tc.code)
	}
}

func TestJSONDefaultsNilDataToEmptyObject(t *testing.T) {
	_, body := record(t, func(c *gin.Context) {
		JSON(c, "ok", nil, http.StatusOK)
	})

	assert.Equal(t, map[string]interface{}{}, body["data"])
}

func TestNotFoundEnvelope(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		NotFound(c)
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Resource not found", body["message"])
	assert.Equal(t, map[string]interface{}{}, body["data"])
}

func TestValidationFailedEnvelope(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		ValidationFailed(c, map[string][]string{
			"name": {"The name field is required."},
		})
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "The given data was invalid", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"The name field is required."}, data["name"])
}

func TestInternalHidesDetailInReleaseMode(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	defer gin.SetMode(gin.TestMode)

	w, body := record(t, func(c *gin.Context) {
		Internal(c, errors.New("db exploded"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", body["message"])
	assert.Equal(t, map[string]interface{}{}, body["data"])
}

func TestInternalEchoesDetailOutsideReleaseMode(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Internal(c, errors.New("db exploded"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "db exploded", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Contains(t, data, "file")
	assert.Contains(t, data, "line")
}

func newPaginationContext(t *testing.T) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "http://example.com/api/property?page=2", nil)
	return c
}

func TestPaginationSinglePage(t *testing.T) {
	c := newPaginationContext(t)

	p := NewPagination(c, 1, 1, 10, 1)

	assert.Equal(t, int64(1), p.Total)
	assert.Equal(t, 1, p.Count)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, "http://example.com/api/property?page=1", p.Links.First)
	assert.Equal(t, "http://example.com/api/property?page=1", p.Links.Last)
	assert.Nil(t, p.Links.Previous)
	assert.Nil(t, p.Links.Next)
}

func TestPaginationMiddlePage(t *testing.T) {
	c := newPaginationContext(t)

	p := NewPagination(c, 25, 10, 10, 2)

	assert.Equal(t, 3, p.TotalPages)
	require.NotNil(t, p.Links.Previous)
	require.NotNil(t, p.Links.Next)
	assert.Equal(t, "http://example.com/api/property?page=1", *p.Links.Previous)
	assert.Equal(t, "http://example.com/api/property?page=3", *p.Links.Next)
	assert.Equal(t, "http://example.com/api/property?page=3", p.Links.Last)
}

func TestPaginationEmptySetStillHasOnePage(t *testing.T) {
	c := newPaginationContext(t)

	p := NewPagination(c, 0, 0, 10, 1)

	assert.Equal(t, 1, p.TotalPages)
	assert.Nil(t, p.Links.Previous)
	assert.Nil(t, p.Links.Next)
}
