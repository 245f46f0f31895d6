package user

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fitclub/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupRouter(repo *MockRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewService(nil, func(sqlx.ExtContext) Repository { return repo }))
	r := gin.New()
	r.POST("/members", h.RegisterMember)
	r.GET("/members", h.FindMember)
	r.GET("/members/:memberID", h.GetMember)
	r.POST("/admins", h.RegisterAdmin)
	r.GET("/admins", h.ListAdmins)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_RegisterMember(t *testing.T) {
	repo := new(MockRepository)
	repo.On("MemberExists", mock.Anything, "Sam", "sam@example.com").Return(false, nil)
	repo.On("CreateMember", mock.Anything, "Sam", (*time.Time)(nil), "", "sam@example.com").Return(&Member{ID: 1, Name: "Sam"}, nil)

	r := setupRouter(repo)

	resp := serve(r, http.MethodPost, "/members", `{"name":"Sam","contact_detail":"sam@example.com"}`)
	assert.Equal(t, http.StatusCreated, resp.Code)

	resp = serve(r, http.MethodPost, "/members", `{"name":"Sam","contact_detail":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandler_Lookups(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetMemberByID", mock.Anything, 5).Return(nil, apperror.ErrNotFound)
	repo.On("FindAdminByName", mock.Anything, "Alex").Return(&Admin{ID: 1, Name: "Alex"}, nil)

	r := setupRouter(repo)

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/members/5", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/members/x", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/members", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/admins?name=Alex", "").Code)
}

func TestHandler_ListAdmins(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListAdmins", mock.Anything).Return([]Admin{{ID: 1, Name: "Alex"}, {ID: 2, Name: "Robin"}}, nil)
	repo.On("FindAdminByName", mock.Anything, "Alex").Return(&Admin{ID: 1, Name: "Alex"}, nil)
	repo.On("FindAdminByName", mock.Anything, "Nobody").Return(nil, apperror.ErrNotFound)

	r := setupRouter(repo)

	resp := serve(r, http.MethodGet, "/admins", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"name":"Robin"`)

	resp = serve(r, http.MethodGet, "/admins?name=Alex", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, strings.HasPrefix(resp.Body.String(), "["))
	assert.NotContains(t, resp.Body.String(), "Robin")

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/admins?name=Nobody", "").Code)
}
