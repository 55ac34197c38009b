package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartImage(t *testing.T, field, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf, w.FormDataContentType()
}

func doUpload(t *testing.T, r *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestUploadImageLocal(t *testing.T) {
	r := newTestRouter(t)

	body, ct := multipartImage(t, "image", "photo.png", "image/png", []byte("fake png bytes"))
	rr := doUpload(t, r, body, ct)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeBody(t, rr)
	assert.Equal(t, "Image uploaded successfully", resp["message"])
	assert.Equal(t, "photo.png", resp["originalName"])
	assert.Contains(t, resp["imageUrl"], "/uploads/products/")
	assert.Contains(t, resp["filename"], "product-")
	assert.Equal(t, float64(len("fake png bytes")), resp["size"])
}

func TestUploadImageNoFile(t *testing.T) {
	r := newTestRouter(t)

	// Mauvais nom de champ : pas de fichier "image"
	body, ct := multipartImage(t, "file", "photo.png", "image/png", []byte("x"))
	rr := doUpload(t, r, body, ct)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "No file uploaded", decodeBody(t, rr)["error"])
}

func TestUploadImageWrongType(t *testing.T) {
	r := newTestRouter(t)

	body, ct := multipartImage(t, "image", "notes.txt", "text/plain", []byte("hello"))
	rr := doUpload(t, r, body, ct)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid file type. Only JPEG, PNG, GIF, and WebP are allowed.", decodeBody(t, rr)["error"])
}

func TestUploadImageTooLarge(t *testing.T) {
	r := newTestRouter(t)

	big := make([]byte, 5*1024*1024+1)
	body, ct := multipartImage(t, "image", "huge.png", "image/png", big)
	rr := doUpload(t, r, body, ct)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "File too large. Maximum size is 5MB.", decodeBody(t, rr)["error"])
}
