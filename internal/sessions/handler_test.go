package sessions_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/lexi/internal/documents"
	"github.com/JaimeStill/lexi/internal/sessions"
	"github.com/JaimeStill/lexi/internal/uploads"
	"github.com/JaimeStill/lexi/pkg/pagination"
	"github.com/JaimeStill/lexi/pkg/routes"
)

type client struct {
	t   *testing.T
	mux *http.ServeMux
}

func newClient(t *testing.T) *client {
	mux := http.NewServeMux()
	routes.Register(mux, newStore(t, sessions.Config{}, 0).Handler().Routes())
	return &client{t: t, mux: mux}
}

func (c *client) do(method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	c.mux.ServeHTTP(rec, req)
	return rec
}

func (c *client) json(method, path, body string) *httptest.ResponseRecorder {
	return c.do(method, path, "application/json", []byte(body))
}

func (c *client) create() string {
	rec := c.json(http.MethodPost, "/sessions", "")
	require.Equal(c.t, http.StatusCreated, rec.Code)

	var s sessions.Session
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &s))
	return s.ID.String()
}

func (c *client) upload(id string, data []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(uploads.FormField, "scan.png")
	require.NoError(c.t, err)
	_, err = fw.Write(data)
	require.NoError(c.t, err)
	require.NoError(c.t, mw.Close())
	return c.do(http.MethodPost, "/sessions/"+id+"/upload", mw.FormDataContentType(), body.Bytes())
}

func TestHandlerChatFlow(t *testing.T) {
	c := newClient(t)
	id := c.create()

	rec := c.json(http.MethodPost, "/sessions/"+id+"/messages", `{"question":"Can I sublet?"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = c.json(http.MethodPut, "/sessions/"+id+"/document", `{"document_id":"rent-agreement"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var loaded sessions.LoadResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loaded))
	assert.Len(t, loaded.Suggestions, 4)

	rec = c.json(http.MethodPost, "/sessions/"+id+"/messages", `{"question":"Can I sublet?"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var ex sessions.Exchange
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ex))
	assert.Equal(t, "rent-clause-sublet", ex.Answer.SourceClauseID)

	rec = c.json(http.MethodGet, "/sessions/"+id+"/messages?page_size=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var page pagination.PageResult[sessions.Message]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, sessions.RoleUser, page.Data[0].Role)

	rec = c.json(http.MethodGet, "/sessions/"+id+"/suggestions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusNoContent, c.json(http.MethodDelete, "/sessions/"+id, "").Code)
	assert.Equal(t, http.StatusNotFound, c.json(http.MethodGet, "/sessions/"+id, "").Code)
}

func TestHandlerPaste(t *testing.T) {
	c := newClient(t)
	id := c.create()

	assert.Equal(t, http.StatusBadRequest, c.json(http.MethodPost, "/sessions/"+id+"/paste", `{"text":"tiny"}`).Code)

	big := `{"text":"` + strings.Repeat("x", 1500) + `"}`
	assert.Equal(t, http.StatusRequestEntityTooLarge, c.json(http.MethodPost, "/sessions/"+id+"/paste", big).Code)

	rec := c.json(http.MethodPost, "/sessions/"+id+"/paste", `{"text":"A memo that is long enough"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	var s sessions.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.True(t, s.Busy)
}

func TestHandlerUpload(t *testing.T) {
	c := newClient(t)
	id := c.create()

	rec := c.upload(id, []byte("%PDF-1.7 definitely not an image"))
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Contains(t, rec.Body.String(), "please upload an image")

	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 256)...)
	rec = c.upload(id, png)
	require.Equal(t, http.StatusOK, rec.Code)

	var s sessions.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, []string{documents.LoanAgreementID}, s.Revealed)

	assert.Equal(t, http.StatusNotFound, c.upload("missing", png).Code)
}

func TestHandlerUnknownDocument(t *testing.T) {
	c := newClient(t)
	id := c.create()

	rec := c.json(http.MethodPut, "/sessions/"+id+"/document", `{"document_id":"lease"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
