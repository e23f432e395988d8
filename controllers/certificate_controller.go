// File: controllers/certificate_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"os"

	"club-events/logger"
	"club-events/models"
	"club-events/services"

	"github.com/gin-gonic/gin"
)

// CertificateController exposes certificate generation and download.
type CertificateController struct {
	Certificates services.CertificateServiceInterface
}

// NewCertificateController initializes a new instance of CertificateController.
func NewCertificateController(certs services.CertificateServiceInterface) *CertificateController {
	return &CertificateController{Certificates: certs}
}

// Generate writes the certificate for a registration and confirms in plain text.
func (cc *CertificateController) Generate(c *gin.Context) {
	userID, err := pathID(c, "user_id")
	if err != nil {
		fail(c, err)
		return
	}

	path, err := cc.Certificates.Generate(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	logger.Info.Printf("Generate: certificate ready for registration %d", userID)
	c.String(http.StatusOK, "Certificate created: %s", path)
}

// Download serves a previously generated certificate.
func (cc *CertificateController) Download(c *gin.Context) {
	userID, err := pathID(c, "user_id")
	if err != nil {
		fail(c, err)
		return
	}

	path := cc.Certificates.Path(userID)
	if _, err := os.Stat(path); err != nil {
		fail(c, fmt.Errorf("certificate for registration %d: %w", userID, models.ErrNotFound))
		return
	}
	c.FileAttachment(path, services.FileName(userID))
}
