package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/linskybing/fyp-portal/internal/domain/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	got, err := f.svc.Upload.Upload(ctx, actorOf(f.student), *pdf("Report Final.pdf"))
	require.NoError(t, err)
	assert.True(t, f.objects.Has(got.PublicID))
	assert.True(t, strings.HasPrefix(got.URL, "http://objects.test/"))
	assert.Equal(t, "Report Final.pdf", got.OriginalName)
	assert.Equal(t, "application/pdf", got.FileType)
	assert.Equal(t, []string{"upload"}, f.store.auditActions())
}

func TestUpload_Rejections(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Upload.Upload(ctx, actorOf(f.student), submission.Upload{FileName: "empty.pdf"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.Upload.Upload(ctx, actorOf(f.student), submission.Upload{
		FileName: "image.png", ContentType: "image/png", Size: 3, Body: strings.NewReader("png"),
	})
	assert.ErrorIs(t, err, ErrValidation)

	f.objects.FailPut = func(string) error { return errors.New("no space") }
	_, err = f.svc.Upload.Upload(ctx, actorOf(f.student), *pdf("a.pdf"))
	assert.ErrorIs(t, err, ErrStorage)
	assert.Zero(t, f.objects.Len())
}

func TestIsPDF(t *testing.T) {
	assert.True(t, isPDF("x.bin", "application/pdf"))
	assert.True(t, isPDF("REPORT.PDF", ""))
	assert.False(t, isPDF("report.pdf.exe", "application/octet-stream"))
}
