package application

import (
	"context"
	"fmt"

	"github.com/linskybing/fyp-portal/internal/config"
	"github.com/linskybing/fyp-portal/internal/domain/audit"
	"github.com/linskybing/fyp-portal/internal/domain/submission"
	"github.com/linskybing/fyp-portal/internal/storage"
	"github.com/linskybing/fyp-portal/pkg/types"
	"github.com/linskybing/fyp-portal/pkg/utils"
)

// UploadedArtifact is what clients pass back as a retained attachment.
type UploadedArtifact struct {
	URL          string `json:"url"`
	PublicID     string `json:"publicId"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	FileType     string `json:"fileType"`
}

type UploadService struct {
	Store storage.ObjectStore
	Audit *AuditService
}

func NewUploadService(store storage.ObjectStore, auditSvc *AuditService) *UploadService {
	return &UploadService{
		Store: store,
		Audit: auditSvc,
	}
}

// Upload stores a single PDF ahead of a project write.
func (s *UploadService) Upload(ctx context.Context, actor types.Actor, up submission.Upload) (*UploadedArtifact, error) {
	if up.Body == nil || up.Size == 0 {
		return nil, validationErr("document is required")
	}
	if !isPDF(up.FileName, up.ContentType) {
		return nil, validationErr("only PDF documents are accepted")
	}
	if uploadTooLarge(up.Size) {
		return nil, validationErr("document exceeds the %d MB limit", config.MaxUploadMB)
	}

	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	key := utils.ArtifactKey(up.FileName)
	url, err := s.Store.Put(ctx, key, contentType, up.Body, up.Size)
	if err != nil {
		return nil, storageErr("failed to upload document", err)
	}

	out := &UploadedArtifact{
		URL:          url,
		PublicID:     key,
		OriginalName: up.FileName,
		Size:         up.Size,
		FileType:     contentType,
	}
	// The entry is keyed by object key; it is what lets the uploader attach
	// the document to a project later.
	entry, err := utils.LogAudit(actor, audit.ActionUpload, audit.ResourceArtifact, key, nil, out,
		fmt.Sprintf("uploaded %s", up.FileName), s.Audit.Repos.Audit)
	if err != nil {
		return nil, discardUploads(ctx, s.Store, []string{key}, storageErr("failed to record upload", err))
	}
	s.Audit.Activity.Publish(entry)
	return out, nil
}
