package application

import (
	"context"
	"strings"
	"testing"

	"github.com/linskybing/fyp-portal/internal/config"
	"github.com/linskybing/fyp-portal/internal/domain/project"
	"github.com/linskybing/fyp-portal/internal/domain/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withUploadLimit(t *testing.T, mb int64) {
	t.Helper()
	prev := config.MaxUploadMB
	config.MaxUploadMB = mb
	t.Cleanup(func() { config.MaxUploadMB = prev })
}

func oversized(name string) *submission.Upload {
	up := pdf(name)
	up.Size = 5 << 20
	return up
}

func retained(url, key string) submission.Slot {
	return submission.Slot{Retained: &project.AttachmentRef{URL: url, PublicID: key}}
}

func TestRetainedRef_ForeignKeyIsRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	victim, err := f.svc.Submission.Create(ctx, actorOf(f.other), f.draft())
	require.NoError(t, err)
	victimDoc := victim.Project.Attachments[0]

	_, err = f.svc.Submission.Create(ctx, actorOf(f.student), f.draft(retained("http://attacker.test/mine.pdf", victimDoc.PublicID)))
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.svc.Submission.Create(ctx, actorOf(f.student), f.draft(retained(victimDoc.URL, victimDoc.PublicID)))
	assert.ErrorIs(t, err, ErrValidation)

	sub := f.propose(t)
	_, err = f.svc.Submission.Review(ctx, actorOf(f.supervisor), sub.ID, "RequestChanges", "Add a budget", nil)
	require.NoError(t, err)

	_, err = f.svc.Submission.Resubmit(ctx, actorOf(f.student), sub.ID, submission.Update{
		Slots: []submission.Slot{retained("http://attacker.test/mine.pdf", victimDoc.PublicID), {Upload: pdf("v2.pdf")}},
	})
	assert.ErrorIs(t, err, ErrValidation)

	got, err := f.svc.Submission.Resubmit(ctx, actorOf(f.student), sub.ID, submission.Update{
		Slots: []submission.Slot{{Upload: pdf("v2.pdf")}},
	})
	require.NoError(t, err)
	assert.NotEqual(t, victimDoc.PublicID, got.Project.Attachments[0].PublicID)
	assert.True(t, f.objects.Has(victimDoc.PublicID))
}

func TestRetainedRef_ResubmitKeepsStoredMetadata(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	victim, err := f.svc.Submission.Create(ctx, actorOf(f.other), f.draft())
	require.NoError(t, err)
	victimKey := victim.Project.Attachments[0].PublicID

	sub := f.propose(t)
	own := sub.Project.Attachments[0]
	_, err = f.svc.Submission.Review(ctx, actorOf(f.supervisor), sub.ID, "RequestChanges", "Fix the abstract", nil)
	require.NoError(t, err)

	ref := &project.AttachmentRef{URL: own.URL, PublicID: victimKey, FileName: "renamed.pdf", Size: 1}
	got, err := f.svc.Submission.Resubmit(ctx, actorOf(f.student), sub.ID, submission.Update{
		Slots: []submission.Slot{{Retained: ref}},
	})
	require.NoError(t, err)

	require.Len(t, got.Project.Attachments, 1)
	att := got.Project.Attachments[0]
	assert.Equal(t, own.PublicID, att.PublicID)
	assert.Equal(t, own.FileName, att.FileName)
	assert.Equal(t, own.Size, att.Size)
	assert.True(t, f.objects.Has(own.PublicID))
	assert.True(t, f.objects.Has(victimKey))
}

func TestRetainedRef_UploadedDocumentIsClaimedOnce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	up, err := f.svc.Upload.Upload(ctx, actorOf(f.student), *pdf("proposal.pdf"))
	require.NoError(t, err)
	ref := &project.AttachmentRef{URL: up.URL, PublicID: up.PublicID, FileName: "other-name.pdf", Size: 999}

	_, err = f.svc.Submission.Create(ctx, actorOf(f.other), f.draft(submission.Slot{Retained: ref}))
	assert.ErrorIs(t, err, ErrValidation, "only the uploader can attach it")

	sub, err := f.svc.Submission.Create(ctx, actorOf(f.student), f.draft(submission.Slot{Retained: ref}))
	require.NoError(t, err)
	att := sub.Project.Attachments[0]
	assert.Equal(t, up.PublicID, att.PublicID)
	assert.Equal(t, "proposal.pdf", att.FileName)
	assert.Equal(t, up.Size, att.Size)

	_, err = f.svc.Submission.Review(ctx, actorOf(f.supervisor), sub.ID, "Reject", "Out of scope", nil)
	require.NoError(t, err)
	_, err = f.svc.Submission.Create(ctx, actorOf(f.student), f.draft(submission.Slot{Retained: ref}))
	assert.ErrorIs(t, err, ErrValidation, "a document belongs to one project")

	up2, err := f.svc.Upload.Upload(ctx, actorOf(f.student), *pdf("second.pdf"))
	require.NoError(t, err)
	_, err = f.svc.Submission.Create(ctx, actorOf(f.student), f.draft(retained("http://objects.test/elsewhere.pdf", up2.PublicID)))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.Submission.Create(ctx, actorOf(f.student), f.draft(
		retained(up2.URL, up2.PublicID),
		retained(up2.URL, up2.PublicID),
	))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProjectUpdate_RefsResolveToStoredDocuments(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	victim, err := f.svc.Submission.Create(ctx, actorOf(f.other), f.draft())
	require.NoError(t, err)
	victimKey := victim.Project.Attachments[0].PublicID

	p, err := f.svc.Project.Create(ctx, actorOf(f.supervisor), f.createInput(t, f.supervisor))
	require.NoError(t, err)
	own := p.Attachments[0]

	_, err = f.svc.Project.Update(ctx, actorOf(f.supervisor), p.ID, project.UpdateProjectDTO{
		Attachments: []project.AttachmentRef{{URL: "http://attacker.test/x.pdf", PublicID: victimKey}},
	})
	assert.ErrorIs(t, err, ErrValidation)

	got, err := f.svc.Project.Update(ctx, actorOf(f.supervisor), p.ID, project.UpdateProjectDTO{
		Attachments: []project.AttachmentRef{{URL: own.URL, PublicID: victimKey}},
	})
	require.NoError(t, err)
	assert.Equal(t, own.PublicID, got.Attachments[0].PublicID)

	_, err = f.svc.Project.Update(ctx, actorOf(f.supervisor), p.ID, project.UpdateProjectDTO{
		Attachments: []project.AttachmentRef{},
	})
	require.NoError(t, err)
	assert.False(t, f.objects.Has(own.PublicID))
	assert.True(t, f.objects.Has(victimKey))
}

func TestProjectDelete_KeepsObjectStillReferenced(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	key := "project-artifacts/shared.pdf"
	url, err := f.objects.Put(ctx, key, "application/pdf", strings.NewReader("%PDF"), 4)
	require.NoError(t, err)
	shared := func() project.Project {
		return f.store.addProject(project.Project{
			Title:        "Shared",
			Description:  "Two rows, one object",
			Category:     "AI",
			SupervisorID: f.supervisor.ID,
			OwnerID:      f.supervisor.ID,
			Attachments:  []project.Attachment{{Slot: 1, URL: url, PublicID: key}},
		})
	}
	a, b := shared(), shared()

	require.NoError(t, f.svc.Project.Delete(ctx, actorOf(f.supervisor), a.ID))
	assert.True(t, f.objects.Has(key))

	require.NoError(t, f.svc.Project.Delete(ctx, actorOf(f.supervisor), b.ID))
	assert.False(t, f.objects.Has(key))
}

func TestInlineUploads_SizeLimit(t *testing.T) {
	withUploadLimit(t, 1)
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Submission.Create(ctx, actorOf(f.student), f.draft(submission.Slot{Upload: oversized("big.pdf")}))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, f.objects.Len())

	sub := f.propose(t)
	_, err = f.svc.Submission.Review(ctx, actorOf(f.supervisor), sub.ID, "RequestChanges", "Shorter please", nil)
	require.NoError(t, err)
	_, err = f.svc.Submission.Resubmit(ctx, actorOf(f.student), sub.ID, submission.Update{
		Slots: []submission.Slot{{Upload: oversized("big-v2.pdf")}},
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 1, f.objects.Len())
	assert.Equal(t, submission.StatusChangesRequested, f.store.submission(sub.ID).Status)

	_, err = f.svc.Upload.Upload(ctx, actorOf(f.student), *oversized("big.pdf"))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 1, f.objects.Len())
}

func TestUploadTooLarge(t *testing.T) {
	withUploadLimit(t, 0)
	assert.False(t, uploadTooLarge(1<<40))

	withUploadLimit(t, 2)
	assert.False(t, uploadTooLarge(2<<20))
	assert.True(t, uploadTooLarge(2<<20+1))
}
