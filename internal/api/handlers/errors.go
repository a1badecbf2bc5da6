package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/fyp-portal/internal/application"
	"github.com/linskybing/fyp-portal/pkg/response"
	"github.com/linskybing/fyp-portal/pkg/types"
	"github.com/linskybing/fyp-portal/pkg/utils"
)

var kindStatus = []struct {
	kind   error
	status int
}{
	{application.ErrValidation, http.StatusBadRequest},
	{application.ErrUnauthorized, http.StatusUnauthorized},
	{application.ErrForbidden, http.StatusForbidden},
	{application.ErrNotFound, http.StatusNotFound},
	{application.ErrStorage, http.StatusBadGateway},
}

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	kind := application.KindOf(err)
	if kind == nil {
		return http.StatusInternalServerError
	}
	// 409 is kept for the duplicate access request so clients can show
	// "already requested"; every other conflict is 422.
	if errors.Is(kind, application.ErrConflict) {
		if errors.Is(err, application.ErrDuplicateRequest) {
			return http.StatusConflict
		}
		return http.StatusUnprocessableEntity
	}
	for _, ks := range kindStatus {
		if errors.Is(kind, ks.kind) {
			return ks.status
		}
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[handler] %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	response.Error(c, status, msg)
}

var fieldLabels = map[string]string{
	"ProjectID":    "project id",
	"SupervisorID": "supervisor id",
	"StaffID":      "staff id",
	"AcademicYear": "academic year",
}

// bindError turns binding failures into one readable message.
func bindError(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		response.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := fieldLabels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	response.Error(c, http.StatusBadRequest, strings.Join(msgs, "; "))
}

// currentActor resolves the caller or writes 401.
func currentActor(c *gin.Context) (types.Actor, bool) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return types.Actor{}, false
	}
	return actor, true
}

// pathID parses a numeric path parameter or writes 400.
func pathID(c *gin.Context, name, what string) (uint, bool) {
	id, err := utils.ParseIDParam(c, name)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid "+what+" id")
		return 0, false
	}
	return id, true
}
