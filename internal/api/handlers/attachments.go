package handlers

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/fyp-portal/internal/domain/project"
	"github.com/linskybing/fyp-portal/internal/domain/submission"
)

const documentField = "document"

// isMultipart reports whether the request carries files.
func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// formAttachments reads the retained references sent as a JSON string in
// the "attachments" form field. ok is false when the field is absent.
func formAttachments(c *gin.Context) ([]project.AttachmentRef, bool, error) {
	raw, ok := c.GetPostForm("attachments")
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, ok, nil
	}
	var refs []project.AttachmentRef
	if err := json.Unmarshal([]byte(raw), &refs); err != nil {
		return nil, true, fmt.Errorf("attachments must be a JSON array: %w", err)
	}
	return refs, true, nil
}

// collectSlots lines up retained references and uploaded files by position.
// Files in document1/document2 target that slot; files in "document" fill
// the first free slots. It returns nil when the request names no
// attachments at all. The returned closer releases opened files.
func collectSlots(c *gin.Context, refs []project.AttachmentRef, refsGiven bool) ([]submission.Slot, func(), error) {
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	slots := make([]submission.Slot, 0, project.MaxAttachmentSlots)
	for i := range refs {
		ref := refs[i]
		slots = append(slots, submission.Slot{Retained: &ref})
	}

	if !isMultipart(c) {
		if !refsGiven {
			return nil, closeAll, nil
		}
		return slots, closeAll, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, closeAll, err
	}

	open := func(fh *multipart.FileHeader) (*submission.Upload, error) {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		opened = append(opened, f)
		return &submission.Upload{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		}, nil
	}
	grow := func(n int) {
		for len(slots) < n {
			slots = append(slots, submission.Slot{})
		}
	}

	sawFile := false
	for i := 1; i <= project.MaxAttachmentSlots; i++ {
		for _, fh := range form.File[fmt.Sprintf("%s%d", documentField, i)] {
			up, err := open(fh)
			if err != nil {
				closeAll()
				return nil, func() {}, err
			}
			sawFile = true
			grow(i)
			if slots[i-1].Upload != nil {
				// a second file for the same slot goes to a new one and trips the limit
				slots = append(slots, submission.Slot{Upload: up})
				continue
			}
			slots[i-1].Upload = up
		}
	}
	for _, fh := range form.File[documentField] {
		up, err := open(fh)
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		sawFile = true
		placed := false
		for i := range slots {
			if slots[i].Empty() {
				slots[i] = submission.Slot{Upload: up}
				placed = true
				break
			}
		}
		if !placed {
			slots = append(slots, submission.Slot{Upload: up})
		}
	}

	if !sawFile && !refsGiven {
		return nil, closeAll, nil
	}
	return slots, closeAll, nil
}

// splitList accepts repeated form values and comma separated ones.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
