package notify

import (
	"fmt"
	"html"
)

func SubmissionReviewed(to, studentName, projectTitle, status, response string, grade *string) Message {
	body := fmt.Sprintf("<p>Dear %s,</p><p>Your project <b>%s</b> has been reviewed. New status: <b>%s</b>.</p>",
		html.EscapeString(studentName), html.EscapeString(projectTitle), html.EscapeString(status))
	if grade != nil && *grade != "" {
		body += fmt.Sprintf("<p>Grade: <b>%s</b></p>", html.EscapeString(*grade))
	}
	if response != "" {
		body += fmt.Sprintf("<p>Supervisor feedback:</p><blockquote>%s</blockquote>", html.EscapeString(response))
	}
	return Message{
		To:      []string{to},
		Subject: fmt.Sprintf("Submission %s: %s", status, projectTitle),
		HTML:    body,
	}
}

func AccessRequestReviewed(to, studentName, projectTitle, status, response string) Message {
	body := fmt.Sprintf("<p>Dear %s,</p><p>Your request to access <b>%s</b> was <b>%s</b>.</p>",
		html.EscapeString(studentName), html.EscapeString(projectTitle), html.EscapeString(status))
	if response != "" {
		body += fmt.Sprintf("<blockquote>%s</blockquote>", html.EscapeString(response))
	}
	return Message{
		To:      []string{to},
		Subject: fmt.Sprintf("Access request %s: %s", status, projectTitle),
		HTML:    body,
	}
}
