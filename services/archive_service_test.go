// file: services/archive_service_test.go
package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) UploadWithContext(ctx aws.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	args := m.Called(input)
	out, _ := args.Get(0).(*s3manager.UploadOutput)
	return out, args.Error(1)
}

func TestS3Archiver_Archive(t *testing.T) {
	up := new(mockUploader)
	a := &S3Archiver{bucket: "club-certs", prefix: "certificates", uploader: up}

	var captured *s3manager.UploadInput
	up.On("UploadWithContext", mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(0).(*s3manager.UploadInput) }).
		Return(&s3manager.UploadOutput{Location: "https://club-certs/certificates/certificate-7.pdf"}, nil).
		Once()

	err := a.Archive(context.Background(), "certificate-7.pdf", strings.NewReader("%PDF"))

	assert.NoError(t, err)
	up.AssertExpectations(t)
	if assert.NotNil(t, captured) {
		body, _ := io.ReadAll(captured.Body)
		assert.Equal(t, "club-certs", aws.StringValue(captured.Bucket))
		assert.Equal(t, "certificates/certificate-7.pdf", aws.StringValue(captured.Key))
		assert.Equal(t, "application/pdf", aws.StringValue(captured.ContentType))
		assert.Equal(t, "%PDF", string(body))
	}
}

func TestS3Archiver_ArchiveFails(t *testing.T) {
	up := new(mockUploader)
	a := &S3Archiver{bucket: "club-certs", prefix: "certificates", uploader: up}

	up.On("UploadWithContext", mock.Anything).Return(nil, errors.New("access denied")).Once()

	err := a.Archive(context.Background(), "certificate-7.pdf", strings.NewReader("%PDF"))

	assert.ErrorContains(t, err, "access denied")
	up.AssertExpectations(t)
}
