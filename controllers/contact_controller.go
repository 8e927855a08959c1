package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staylux-backend/utils"
)

// ContactController handles the public contact form. Messages are not
// persisted anywhere; the caller gets a reference code and the message is
// logged, which is all the original site did.
type ContactController struct{}

func NewContactController() *ContactController {
	return &ContactController{}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r contactRequest) validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = "Name is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = "Email is required"
	} else if !strings.Contains(r.Email, "@") {
		fields["email"] = "Please enter a valid email"
	}
	if strings.TrimSpace(r.Message) == "" {
		fields["message"] = "Message is required"
	}
	return fields
}

// POST /api/contact
func (cc *ContactController) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		utils.JSONValidationError(c, http.StatusBadRequest, fields)
		return
	}

	reference := uuid.NewString()
	log.Printf("contact message %s from %s <%s>: %s", reference, req.Name, req.Email, req.Subject)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"reference": reference})
}
