package application

import (
	"github.com/linskybing/fyp-portal/internal/domain/access"
	"github.com/linskybing/fyp-portal/internal/domain/project"
	"github.com/linskybing/fyp-portal/internal/domain/user"
)

// CanViewArtifacts decides whether a viewer may see a project's documents.
// Staff always can; a student needs an Approved request for this project.
func CanViewArtifacts(viewerRole user.Role, viewerID uint, p project.Project, requests []access.Request) bool {
	if viewerRole.IsStaff() {
		return true
	}
	if viewerRole != user.RoleStudent {
		return false
	}
	for _, r := range requests {
		if r.StudentID == viewerID && r.ProjectID == p.ID && r.Status == access.StatusApproved {
			return true
		}
	}
	return false
}

// newProjectView projects p for one viewer. latest is the viewer's most
// recent request for p, if any.
func newProjectView(p project.Project, visible bool, latest *access.Request) project.View {
	v := project.View{Project: p, ArtifactsVisible: visible}
	if !visible {
		v.Attachments = []project.Attachment{}
	}
	if latest != nil {
		status := string(latest.Status)
		v.AccessStatus = &status
	}
	return v
}

func latestRequest(requests []access.Request) *access.Request {
	var latest *access.Request
	for i := range requests {
		r := requests[i]
		if latest == nil || r.RequestedAt.After(latest.RequestedAt) ||
			(r.RequestedAt.Equal(latest.RequestedAt) && r.ID > latest.ID) {
			latest = &r
		}
	}
	return latest
}
