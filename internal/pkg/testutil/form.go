package testutil

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// ImageField is the multipart field carrying an article image
const ImageField = "image"

// CreateMultipartBody encodes fields and an optional image into a multipart body.
// It returns the body and the matching Content-Type header value.
func CreateMultipartBody(t *testing.T, fields map[string]string, imageName string, image []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if imageName != "" {
		part, err := writer.CreateFormFile(ImageField, imageName)
		require.NoError(t, err)

		_, err = part.Write(image)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

// NewMultipartRequest builds an HTTP request whose body is produced by CreateMultipartBody
func NewMultipartRequest(t *testing.T, method, target string, fields map[string]string, imageName string, image []byte) *http.Request {
	t.Helper()

	body, contentType := CreateMultipartBody(t, fields, imageName, image)
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", contentType)
	return req
}

// CreateImageFileHeader parses a single image upload and returns its file header,
// the same value gin hands to handlers through c.FormFile.
func CreateImageFileHeader(t *testing.T, imageName string, image []byte) *multipart.FileHeader {
	t.Helper()

	body, contentType := CreateMultipartBody(t, nil, imageName, image)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)

	require.NoError(t, req.ParseMultipartForm(32<<20)) // 32 MB
	t.Cleanup(func() {
		_ = req.MultipartForm.RemoveAll()
	})

	headers := req.MultipartForm.File[ImageField]
	require.Len(t, headers, 1)
	return headers[0]
}
