// file: services/certificate_service_test.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"club-events/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeLookup is an in-memory CertificateLookup.
type fakeLookup struct {
	registrations map[int64]models.Registration
	events        map[int64]models.Event
}

func (f *fakeLookup) GetRegistration(_ context.Context, id int64) (*models.Registration, error) {
	r, ok := f.registrations[id]
	if !ok {
		return nil, fmt.Errorf("registration %d: %w", id, models.ErrNotFound)
	}
	return &r, nil
}

func (f *fakeLookup) GetEvent(_ context.Context, id int64) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, fmt.Errorf("event %d: %w", id, models.ErrNotFound)
	}
	return &e, nil
}

type mockArchiver struct {
	mock.Mock
}

func (m *mockArchiver) Archive(_ context.Context, name string, body io.Reader) error {
	data, _ := io.ReadAll(body)
	args := m.Called(name, len(data) > 0)
	return args.Error(0)
}

func adaLookup() *fakeLookup {
	return &fakeLookup{
		registrations: map[int64]models.Registration{
			3: {ID: 3, Name: "Ada Lovelace", Email: "ada@x.com", EventID: 1},
			4: {ID: 4, Name: "Ghost", EventID: 99},
		},
		events: map[int64]models.Event{
			1: {ID: 1, Title: "Robotics Fair", Club: "Robotics"},
		},
	}
}

func TestGenerate_ContainsNameAndTitle(t *testing.T) {
	dir := t.TempDir()
	svc := NewCertificateService(adaLookup(), dir)

	path, err := svc.Generate(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "certificate-3.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF")
	assert.Contains(t, string(data), "Certificate of Participation")
	assert.Contains(t, string(data), "This certifies that")
	assert.Contains(t, string(data), "Ada Lovelace")
	assert.Contains(t, string(data), "participated in Robotics Fair")
}

func TestGenerate_FileNameIgnoresAttendeeName(t *testing.T) {
	dir := t.TempDir()
	lookup := &fakeLookup{
		registrations: map[int64]models.Registration{
			1: {ID: 1, Name: "../../etc/passwd", EventID: 1},
			2: {ID: 2, Name: "../../etc/passwd", EventID: 1},
		},
		events: map[int64]models.Event{1: {ID: 1, Title: "Chess Open"}},
	}
	svc := NewCertificateService(lookup, dir)

	p1, err := svc.Generate(context.Background(), 1)
	require.NoError(t, err)
	p2, err := svc.Generate(context.Background(), 2)
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
	assert.Equal(t, dir, filepath.Dir(p1))
	assert.Equal(t, dir, filepath.Dir(p2))
}

func TestGenerate_MissingRegistration(t *testing.T) {
	svc := NewCertificateService(adaLookup(), t.TempDir())

	_, err := svc.Generate(context.Background(), 404)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGenerate_MissingEvent(t *testing.T) {
	dir := t.TempDir()
	svc := NewCertificateService(adaLookup(), dir)

	_, err := svc.Generate(context.Background(), 4)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, statErr := os.Stat(filepath.Join(dir, "certificate-4.pdf"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerate_UnwritableDir(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	svc := NewCertificateService(adaLookup(), filepath.Join(blocker, "certs"))

	_, err := svc.Generate(context.Background(), 3)
	assert.ErrorIs(t, err, models.ErrExport)
}

func TestGenerate_WithQRCode(t *testing.T) {
	svc := NewCertificateService(adaLookup(), t.TempDir(), WithQRCodeBaseURL("http://localhost:8080"))

	path, err := svc.Generate(context.Background(), 3)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/Subtype /Image")
	assert.Contains(t, string(data), "Ada Lovelace")
}

func TestGenerate_Archives(t *testing.T) {
	archiver := new(mockArchiver)
	archiver.On("Archive", "certificate-3.pdf", true).Return(nil).Once()
	svc := NewCertificateService(adaLookup(), t.TempDir(), WithArchiver(archiver))

	_, err := svc.Generate(context.Background(), 3)

	require.NoError(t, err)
	archiver.AssertExpectations(t)
}

func TestGenerate_ArchiveFailureIsExportError(t *testing.T) {
	archiver := new(mockArchiver)
	archiver.On("Archive", "certificate-3.pdf", true).Return(errors.New("bucket gone")).Once()
	svc := NewCertificateService(adaLookup(), t.TempDir(), WithArchiver(archiver))

	_, err := svc.Generate(context.Background(), 3)

	assert.ErrorIs(t, err, models.ErrExport)
	archiver.AssertExpectations(t)
}

func TestGenerate_AccentedTextUsesWinAnsi(t *testing.T) {
	lookup := &fakeLookup{
		registrations: map[int64]models.Registration{
			5: {ID: 5, Name: "José Núñez", EventID: 2},
		},
		events: map[int64]models.Event{2: {ID: 2, Title: "Café Fair"}},
	}
	svc := NewCertificateService(lookup, t.TempDir())

	path, err := svc.Generate(context.Background(), 5)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Jos\xe9 N\xfa\xf1ez")
	assert.Contains(t, string(data), "participated in Caf\xe9 Fair")
	assert.NotContains(t, string(data), "José", "UTF-8 bytes must not reach the cp1252 font")
}

func TestGenerate_A4Page(t *testing.T) {
	svc := NewCertificateService(adaLookup(), t.TempDir())

	path, err := svc.Generate(context.Background(), 3)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/MediaBox [0 0 595.28 841.89]")
}
