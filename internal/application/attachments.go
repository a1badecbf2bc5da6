package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/linskybing/fyp-portal/internal/config"
	"github.com/linskybing/fyp-portal/internal/domain/audit"
	"github.com/linskybing/fyp-portal/internal/domain/project"
	"github.com/linskybing/fyp-portal/internal/domain/submission"
	"github.com/linskybing/fyp-portal/internal/repository"
	"github.com/linskybing/fyp-portal/internal/storage"
	"github.com/linskybing/fyp-portal/pkg/types"
	"github.com/linskybing/fyp-portal/pkg/utils"
)

func countSlots(slots []submission.Slot) int {
	n := 0
	for _, s := range slots {
		if !s.Empty() {
			n++
		}
	}
	return n
}

// checkSlots validates slot shape without touching storage.
func checkSlots(slots []submission.Slot) error {
	if len(slots) > project.MaxAttachmentSlots {
		return validationErr("at most %d attachments are allowed", project.MaxAttachmentSlots)
	}
	if countSlots(slots) == 0 {
		return validationErr("at least one attachment is required")
	}
	for i, s := range slots {
		if s.Upload != nil && s.Retained != nil && s.Retained.URL != "" {
			return validationErr("attachment %d must be either a new upload or an existing file", i+1)
		}
		if s.Upload == nil {
			continue
		}
		if !isPDF(s.Upload.FileName, s.Upload.ContentType) {
			return validationErr("attachment %d must be a PDF", i+1)
		}
		if uploadTooLarge(s.Upload.Size) {
			return validationErr("attachment %d exceeds the %d MB limit", i+1, config.MaxUploadMB)
		}
	}
	return nil
}

// uploadTooLarge applies MAX_UPLOAD_MB to every stored document. A zero
// limit disables the check.
func uploadTooLarge(size int64) bool {
	limit := config.MaxUploadMB << 20
	return limit > 0 && size > limit
}

// claimRetained maps retained references onto attachments the server
// already knows about. A reference either names one of current's documents,
// matched by URL, or an artifact the actor uploaded that no project holds
// yet. Metadata sent by the client is never stored. The result is indexed
// like slots.
func claimRetained(repos *repository.Repos, actor types.Actor, slots []submission.Slot, current *project.Project) ([]*project.Attachment, error) {
	claimed := make([]*project.Attachment, len(slots))
	seen := map[string]struct{}{}
	for i, s := range slots {
		if s.Upload != nil || s.Retained == nil || s.Retained.URL == "" {
			continue
		}
		ref := s.Retained
		if _, dup := seen[ref.URL]; dup {
			return nil, validationErr("attachment %d is listed more than once", i+1)
		}
		seen[ref.URL] = struct{}{}

		if current != nil {
			if a, ok := current.AttachmentByURL(ref.URL); ok {
				claimed[i] = &a
				continue
			}
		}
		a, err := claimUpload(repos, actor, *ref, i+1)
		if err != nil {
			return nil, err
		}
		claimed[i] = a
	}
	return claimed, nil
}

// claimUpload accepts a reference returned by the upload endpoint to the
// same actor. The upload's audit entry is the record of ownership.
func claimUpload(repos *repository.Repos, actor types.Actor, ref project.AttachmentRef, slot int) (*project.Attachment, error) {
	key := strings.TrimSpace(ref.PublicID)
	if !strings.HasPrefix(key, utils.ArtifactPrefix+"/") {
		return nil, validationErr("attachment %d is not an uploaded document", slot)
	}
	entry, err := repos.Audit.FindEntry(actor.UserID, audit.ActionUpload, audit.ResourceArtifact, key)
	if err != nil {
		if isNotFound(err) {
			return nil, validationErr("attachment %d was not uploaded by you", slot)
		}
		return nil, translate(err, "audit log")
	}
	var up UploadedArtifact
	if err := json.Unmarshal(entry.NewData, &up); err != nil || up.PublicID != key || up.URL != ref.URL {
		return nil, validationErr("attachment %d does not match the uploaded document", slot)
	}
	n, err := repos.Project.CountAttachmentsByPublicID(key)
	if err != nil {
		return nil, translate(err, "project")
	}
	if n > 0 {
		return nil, validationErr("attachment %d already belongs to a project", slot)
	}
	return &project.Attachment{
		URL:      up.URL,
		PublicID: up.PublicID,
		FileName: up.OriginalName,
		FileType: up.FileType,
		Size:     up.Size,
	}, nil
}

// resolveAttachments uploads fresh slots and takes claimed ones as they
// are. It returns the resolved attachments and the keys it uploaded. A
// failed upload removes what this call already stored.
func resolveAttachments(ctx context.Context, store storage.ObjectStore, slots []submission.Slot, claimed []*project.Attachment) ([]project.Attachment, []string, error) {
	attachments := make([]project.Attachment, 0, len(slots))
	var fresh []string

	for i, s := range slots {
		slot := i + 1
		switch {
		case s.Upload != nil:
			key := utils.ArtifactKey(s.Upload.FileName)
			url, err := store.Put(ctx, key, s.Upload.ContentType, s.Upload.Body, s.Upload.Size)
			if err != nil {
				cause := storageErr(fmt.Sprintf("failed to upload attachment %d", slot), err)
				return nil, nil, discardUploads(ctx, store, fresh, cause)
			}
			fresh = append(fresh, key)
			attachments = append(attachments, project.Attachment{
				Slot:     slot,
				URL:      url,
				PublicID: key,
				FileName: s.Upload.FileName,
				FileType: s.Upload.ContentType,
				Size:     s.Upload.Size,
			})
		case i < len(claimed) && claimed[i] != nil:
			a := *claimed[i]
			a.ID = 0
			a.Slot = slot
			attachments = append(attachments, a)
		}
	}
	return attachments, fresh, nil
}

// discardUploads removes keys after cause aborted the operation. If any
// removal fails the result is a StorageError carrying ErrReconciliation.
func discardUploads(ctx context.Context, store storage.ObjectStore, keys []string, cause error) error {
	if len(keys) == 0 {
		return cause
	}
	var failed []error
	for _, key := range keys {
		if err := store.Remove(ctx, key); err != nil {
			log.Printf("[storage] failed to remove %s after aborted write: %v", key, err)
			failed = append(failed, err)
		}
	}
	if len(failed) == 0 {
		return cause
	}
	return &Error{
		Kind:    ErrStorage,
		Message: ErrReconciliation.Error() + ": " + strings.Join(keys, ", "),
		Err:     errors.Join(append([]error{ErrReconciliation, cause}, failed...)...),
	}
}

// removeArtifacts deletes stored objects once no project references them.
func removeArtifacts(ctx context.Context, store storage.ObjectStore, projects repository.ProjectRepo, attachments []project.Attachment) {
	for _, a := range attachments {
		if a.PublicID == "" {
			continue
		}
		n, err := projects.CountAttachmentsByPublicID(a.PublicID)
		if err != nil {
			log.Printf("[storage] keeping artifact %s, reference check failed: %v", a.PublicID, err)
			continue
		}
		if n > 0 {
			log.Printf("[storage] keeping artifact %s, still referenced by %d attachment(s)", a.PublicID, n)
			continue
		}
		if err := store.Remove(ctx, a.PublicID); err != nil {
			log.Printf("[storage] failed to remove artifact %s: %v", a.PublicID, err)
		}
	}
}

// droppedAttachments returns the entries of before that are absent from after.
func droppedAttachments(before, after []project.Attachment) []project.Attachment {
	kept := make(map[string]struct{}, len(after))
	for _, a := range after {
		kept[a.URL] = struct{}{}
	}
	var dropped []project.Attachment
	for _, a := range before {
		if _, ok := kept[a.URL]; !ok {
			dropped = append(dropped, a)
		}
	}
	return dropped
}

func isPDF(fileName, contentType string) bool {
	if strings.EqualFold(contentType, "application/pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(fileName), ".pdf")
}
