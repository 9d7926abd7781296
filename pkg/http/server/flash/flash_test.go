package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieFlasher_AddThenPop(t *testing.T) {
	flasher := NewCookieFlasher("test-secret")

	addRecorder := httptest.NewRecorder()
	addReq := httptest.NewRequest(http.MethodPost, "/submit_project", nil)
	require.NoError(t, flasher.Add(addRecorder, addReq, KindSuccess, "Project added successfully!"))

	cookies := addRecorder.Result().Cookies()
	require.NotEmpty(t, cookies)

	popReq := httptest.NewRequest(http.MethodGet, "/projects", nil)
	for _, cookie := range cookies {
		popReq.AddCookie(cookie)
	}
	popRecorder := httptest.NewRecorder()

	messages, err := flasher.Pop(popRecorder, popReq)
	require.NoError(t, err)
	assert.Equal(t, []Message{{Kind: KindSuccess, Text: "Project added successfully!"}}, messages)

	// the session cookie written by Pop no longer carries the message
	againReq := httptest.NewRequest(http.MethodGet, "/projects", nil)
	for _, cookie := range popRecorder.Result().Cookies() {
		againReq.AddCookie(cookie)
	}
	messages, err = flasher.Pop(httptest.NewRecorder(), againReq)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestCookieFlasher_PopWithoutCookie(t *testing.T) {
	flasher := NewCookieFlasher("test-secret")

	messages, err := flasher.Pop(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/projects", nil))
	assert.NoError(t, err)
	assert.Empty(t, messages)
}

func TestCookieFlasher_TamperedCookie(t *testing.T) {
	flasher := NewCookieFlasher("test-secret")

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.AddCookie(&http.Cookie{Name: "portfolio-flash", Value: "garbage"})

	messages, err := flasher.Pop(httptest.NewRecorder(), req)
	assert.NoError(t, err, "an unreadable cookie starts a fresh session")
	assert.Empty(t, messages)
}
