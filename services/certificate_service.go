// services/certificate_service.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"club-events/logger"
	"club-events/models"

	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"
)

// A4 page height in points; layout coordinates below are measured from the
// bottom edge and flipped when drawn.
const pageHeight = 841.89

const qrSize = 96.0

// CertificateLookup is what certificate generation reads from the store.
type CertificateLookup interface {
	GetRegistration(ctx context.Context, id int64) (*models.Registration, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
}

// CertificateServiceInterface is what the controllers depend on.
type CertificateServiceInterface interface {
	Generate(ctx context.Context, registrationID int64) (string, error)
	Path(registrationID int64) string
}

// CertificateService draws participation certificates as PDF files.
type CertificateService struct {
	lookup   CertificateLookup
	dir      string
	baseURL  string
	archiver Archiver
	encode   QRCodeEncoder
}

// CertificateOption customises a CertificateService.
type CertificateOption func(*CertificateService)

// WithQRCodeBaseURL adds a QR code linking to <baseURL>/certificate/<id>/download.
func WithQRCodeBaseURL(baseURL string) CertificateOption {
	return func(s *CertificateService) { s.baseURL = baseURL }
}

// WithArchiver uploads every generated certificate through a.
func WithArchiver(a Archiver) CertificateOption {
	return func(s *CertificateService) { s.archiver = a }
}

// NewCertificateService writes certificates into dir.
func NewCertificateService(lookup CertificateLookup, dir string, opts ...CertificateOption) *CertificateService {
	s := &CertificateService{
		lookup: lookup,
		dir:    dir,
		encode: qrcode.Encode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FileName is the certificate file name for a registration. It never contains
// user input, so two attendees with the same name get separate files.
func FileName(registrationID int64) string {
	return "certificate-" + strconv.FormatInt(registrationID, 10) + ".pdf"
}

// Path is where the certificate for registrationID is written.
func (s *CertificateService) Path(registrationID int64) string {
	return filepath.Join(s.dir, FileName(registrationID))
}

// Generate renders the certificate for registrationID and returns its path.
func (s *CertificateService) Generate(ctx context.Context, registrationID int64) (string, error) {
	reg, err := s.lookup.GetRegistration(ctx, registrationID)
	if err != nil {
		return "", err
	}
	event, err := s.lookup.GetEvent(ctx, reg.EventID)
	if err != nil {
		return "", err
	}

	pdf, err := s.render(reg, event)
	if err != nil {
		return "", exportErr("render certificate", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", exportErr("create certificate dir", err)
	}
	path := s.Path(registrationID)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", exportErr("write certificate", err)
	}
	logger.Info.Printf("Generate: certificate for registration %d written to %s", registrationID, path)

	if s.archiver != nil {
		if err := s.archiver.Archive(ctx, FileName(registrationID), bytes.NewReader(pdf)); err != nil {
			return "", exportErr("archive certificate", err)
		}
	}
	return path, nil
}

func (s *CertificateService) render(reg *models.Registration, event *models.Event) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	// core fonts are cp1252; names and titles arrive as UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetCompression(false)
	pdf.SetTitle("Certificate of Participation", false)
	pdf.SetCreator("club-events", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(150, pageHeight-700, "Certificate of Participation")

	pdf.SetFont("Helvetica", "", 16)
	pdf.Text(100, pageHeight-600, "This certifies that")
	pdf.Text(100, pageHeight-560, tr(reg.Name))
	pdf.Text(100, pageHeight-520, tr("participated in "+event.Title))

	if s.baseURL != "" {
		if err := s.drawQRCode(pdf, reg.ID); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *CertificateService) drawQRCode(pdf *fpdf.Fpdf, registrationID int64) error {
	url := fmt.Sprintf("%s/certificate/%d/download", s.baseURL, registrationID)
	png, err := GenerateQRCode(url, 256, s.encode)
	if err != nil {
		return fmt.Errorf("certificate qr code: %w", err)
	}

	name := "qr-" + strconv.FormatInt(registrationID, 10)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, 100, pageHeight-420, qrSize, qrSize, false, opts, 0, "")
	return pdf.Error()
}

func exportErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(models.ErrExport, err))
}
