package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formFile struct{ field, name string }

func multipartContext(t *testing.T, fields map[string]string, files ...formFile) *gin.Context {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		w, err := mw.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, _ = w.Write([]byte("%PDF-1.4 " + f.name))
	}
	require.NoError(t, mw.Close())

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/submissions", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	return c
}

func TestCollectSlots_NumberedAndLooseFiles(t *testing.T) {
	c := multipartContext(t, nil,
		formFile{"document2", "appendix.pdf"},
		formFile{"document", "proposal.pdf"},
	)
	slots, done, err := collectSlots(c, nil, false)
	require.NoError(t, err)
	defer done()

	require.Len(t, slots, 2)
	assert.Equal(t, "proposal.pdf", slots[0].Upload.FileName)
	assert.Equal(t, "appendix.pdf", slots[1].Upload.FileName)
}

func TestCollectSlots_RetainedThenUpload(t *testing.T) {
	c := multipartContext(t, map[string]string{
		"attachments": `[{"url":"http://objects.test/a.pdf","public_id":"a.pdf"}]`,
	}, formFile{"document", "new.pdf"})

	refs, given, err := formAttachments(c)
	require.NoError(t, err)
	require.True(t, given)

	slots, done, err := collectSlots(c, refs, given)
	require.NoError(t, err)
	defer done()

	require.Len(t, slots, 2)
	assert.Equal(t, "http://objects.test/a.pdf", slots[0].Retained.URL)
	assert.Nil(t, slots[0].Upload)
	assert.Equal(t, "new.pdf", slots[1].Upload.FileName)
}

func TestCollectSlots_DuplicateSlotOverflows(t *testing.T) {
	c := multipartContext(t, nil,
		formFile{"document1", "a.pdf"},
		formFile{"document1", "b.pdf"},
		formFile{"document2", "c.pdf"},
	)
	slots, done, err := collectSlots(c, nil, false)
	require.NoError(t, err)
	defer done()
	assert.Len(t, slots, 3)
}

func TestCollectSlots_NothingGiven(t *testing.T) {
	c := multipartContext(t, map[string]string{"title": "only fields"})
	slots, done, err := collectSlots(c, nil, false)
	require.NoError(t, err)
	done()
	assert.Nil(t, slots)

	c = multipartContext(t, map[string]string{"attachments": "[]"})
	refs, given, err := formAttachments(c)
	require.NoError(t, err)
	slots, done, err = collectSlots(c, refs, given)
	require.NoError(t, err)
	done()
	assert.NotNil(t, slots, "an explicit empty list clears attachments")
	assert.Empty(t, slots)
}

func TestFormAttachments_BadJSON(t *testing.T) {
	c := multipartContext(t, map[string]string{"attachments": "{not json"})
	_, _, err := formAttachments(c)
	assert.Error(t, err)
}
