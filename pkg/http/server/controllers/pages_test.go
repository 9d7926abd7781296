package controllers

import (
	"net/http"
	"net/http/httptest"
	"portfolio/pkg/site"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageController_ErrorPages(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/index.html", []byte("home"), 0644))
	controller := NewPageController(hclog.NewNullLogger(), site.NewSite(hclog.NewNullLogger(), fs))

	recorder := httptest.NewRecorder()
	controller.NotFound(recorder, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "home", recorder.Body.String())

	recorder = httptest.NewRecorder()
	controller.ServerError(recorder, httptest.NewRequest(http.MethodGet, "/projects", nil))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "home", recorder.Body.String())
}

func TestPageController_ErrorPagesWithoutIndex(t *testing.T) {
	controller := NewPageController(hclog.NewNullLogger(), site.NewSite(hclog.NewNullLogger(), afero.NewMemMapFs()))

	recorder := httptest.NewRecorder()
	controller.ServerError(recorder, httptest.NewRequest(http.MethodGet, "/projects", nil))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), http.StatusText(http.StatusInternalServerError))
}

func TestPageController_MissingPageIsNotFound(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/index.html", []byte("home"), 0644))
	controller := NewPageController(hclog.NewNullLogger(), site.NewSite(hclog.NewNullLogger(), fs))

	recorder := httptest.NewRecorder()
	controller.Page("about.html")(recorder, httptest.NewRequest(http.MethodGet, "/about", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "home", recorder.Body.String())
}
