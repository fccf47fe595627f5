package gemini

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanoedit/nanoedit/common/config"
	"github.com/nanoedit/nanoedit/common/upload"
)

func tempUpload(t *testing.T, name string, contentType string, data []byte) *upload.UploadedFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return &upload.UploadedFile{
		Path:         path,
		ContentType:  contentType,
		Size:         int64(len(data)),
		OriginalName: name,
	}
}

func TestConvertEditRequestPartOrder(t *testing.T) {
	files := []*upload.UploadedFile{
		tempUpload(t, "first.jpg", "image/jpeg", []byte("first")),
		tempUpload(t, "second.png", "image/png", []byte("second")),
	}
	req, err := ConvertEditRequest("make it blue", files, "")
	require.NoError(t, err)
	require.Len(t, req.Contents, 1)
	parts := req.Contents[0].Parts
	require.Len(t, parts, 3)
	assert.Equal(t, "make it blue", parts[0].Text)
	require.NotNil(t, parts[1].InlineData)
	assert.Equal(t, "image/jpeg", parts[1].InlineData.MimeType)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("first")), parts[1].InlineData.Data)
	require.NotNil(t, parts[2].InlineData)
	assert.Equal(t, "image/png", parts[2].InlineData.MimeType)
}

func TestConvertEditRequestSkipsMissingAndEmptyFiles(t *testing.T) {
	missing := &upload.UploadedFile{Path: filepath.Join(t.TempDir(), "gone.png"), ContentType: "image/png"}
	empty := tempUpload(t, "empty.png", "image/png", nil)
	valid := tempUpload(t, "ok.png", "image/png", []byte("ok"))
	req, err := ConvertEditRequest("x", []*upload.UploadedFile{missing, empty, valid}, "")
	require.NoError(t, err)
	assert.Len(t, req.Contents[0].Parts, 2)
}

func TestConvertEditRequestNoValidImages(t *testing.T) {
	missing := &upload.UploadedFile{Path: filepath.Join(t.TempDir(), "gone.png"), ContentType: "image/png"}
	_, err := ConvertEditRequest("x", []*upload.UploadedFile{missing}, "")
	assert.True(t, errors.Is(err, ErrNoValidImages))

	_, err = ConvertEditRequest("x", nil, "")
	assert.True(t, errors.Is(err, ErrNoValidImages))
}

func TestConvertEditRequestMimeFallback(t *testing.T) {
	noDeclared := tempUpload(t, "photo.jpg", "", []byte("data"))
	unknown := tempUpload(t, "blob", "", []byte("data"))
	req, err := ConvertEditRequest("x", []*upload.UploadedFile{noDeclared, unknown}, "")
	require.NoError(t, err)
	parts := req.Contents[0].Parts
	assert.Equal(t, "image/jpeg", parts[1].InlineData.MimeType)
	assert.Equal(t, "application/octet-stream", parts[2].InlineData.MimeType)
}

func TestConvertEditRequestGenerationConfig(t *testing.T) {
	file := tempUpload(t, "a.png", "image/png", []byte("data"))

	req, err := ConvertEditRequest("x", []*upload.UploadedFile{file}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"text", "image"}, req.GenerationConfig.ResponseModalities)
	assert.Nil(t, req.GenerationConfig.ImageConfig)

	req, err = ConvertEditRequest("x", []*upload.UploadedFile{file}, "pro")
	require.NoError(t, err)
	require.NotNil(t, req.GenerationConfig.ImageConfig)
	assert.Equal(t, config.ProImageSize, req.GenerationConfig.ImageConfig.ImageSize)
}

func TestExtractGenerationResultFirstInlineDataWins(t *testing.T) {
	imageBytes := []byte{0x89, 0x50, 0x4e, 0x47}
	response := &ChatResponse{
		Candidates: []ChatCandidate{
			{
				Content: ChatContent{Parts: []Part{
					{Text: "here you go"},
					{InlineData: &InlineData{MimeType: "image/jpeg", Data: base64.StdEncoding.EncodeToString(imageBytes)}},
					{InlineData: &InlineData{MimeType: "image/png", Data: base64.StdEncoding.EncodeToString([]byte("second"))}},
				}},
			},
		},
	}
	result, err := ExtractGenerationResult(response)
	require.NoError(t, err)
	assert.True(t, result.HasImage())
	assert.Equal(t, imageBytes, result.Data)
	assert.Equal(t, "image/jpeg", result.MimeType)
}

func TestExtractGenerationResultDefaultsMimeType(t *testing.T) {
	response := &ChatResponse{
		Candidates: []ChatCandidate{
			{
				Content: ChatContent{Parts: []Part{
					{InlineData: &InlineData{Data: base64.StdEncoding.EncodeToString([]byte("img"))}},
				}},
			},
		},
	}
	result, err := ExtractGenerationResult(response)
	require.NoError(t, err)
	assert.Equal(t, "image/png", result.MimeType)
}

func TestExtractGenerationResultFallbackText(t *testing.T) {
	response := &ChatResponse{
		Candidates: []ChatCandidate{
			{
				Content: ChatContent{Parts: []Part{
					{Text: "sorry"},
					{Text: "cannot process"},
				}},
			},
		},
	}
	result, err := ExtractGenerationResult(response)
	require.NoError(t, err)
	assert.False(t, result.HasImage())
	assert.Equal(t, "sorry\ncannot process", result.Text)
}

func TestExtractGenerationResultEmptyReply(t *testing.T) {
	result, err := ExtractGenerationResult(&ChatResponse{})
	require.NoError(t, err)
	assert.False(t, result.HasImage())
	assert.Equal(t, "", result.Text)
}

func TestJoinTextPartsTrims(t *testing.T) {
	response := &ChatResponse{
		Candidates: []ChatCandidate{
			{Content: ChatContent{Parts: []Part{{Text: "  hello \n"}}}},
		},
	}
	assert.Equal(t, "hello", JoinTextParts(response))
}
