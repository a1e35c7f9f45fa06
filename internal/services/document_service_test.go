package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"arportal/internal/models"
	"arportal/internal/services/dto"
	"arportal/internal/validator"
	"arportal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader whose Open works, by going
// through an in-memory multipart form.
func fileHeader(t *testing.T, name, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, name))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(len(content)) + 10240)
	require.NoError(t, err)
	require.NotEmpty(t, form.File["file"])
	return form.File["file"][0]
}

type documentFixture struct {
	svc       DocumentService
	documents *mockDocumentRepo
	products  *mockProductRepo
	store     *mockStorage
	audit     *mockAuditService
	product   *models.Product
}

func newDocumentFixture(t *testing.T) *documentFixture {
	t.Helper()
	documents := newMockDocumentRepo()
	products := newMockProductRepo()
	store := newMockStorage()
	audit := &mockAuditService{}

	product := products.add(&models.Product{
		ManufacturerID: "mfr-1",
		Name:           "Infusion Pump X1",
		Status:         models.ProductStatusDraft,
	})

	return &documentFixture{
		svc:       NewDocumentService(documents, products, store, audit),
		documents: documents,
		products:  products,
		store:     store,
		audit:     audit,
		product:   product,
	}
}

func (f *documentFixture) addDocument(status models.DocumentStatus, uploadedBy string) *models.Document {
	return f.documents.add(&models.Document{
		ProductID:    f.product.ID,
		DocumentType: models.DocumentTypeTechnicalDoc,
		Name:         "Technical File",
		Version:      "1.0",
		FileURL:      "mfr-1/prod-1/tech-file.pdf",
		FileSize:     1024,
		MimeType:     "application/pdf",
		Status:       status,
		UploadedByID: uploadedBy,
		Product:      f.product,
	})
}

func TestDocumentUpload(t *testing.T) {
	f := newDocumentFixture(t)

	doc, err := f.svc.Upload(context.Background(), nil, customerClaims("mfr-1"), &dto.UploadDocumentRequest{
		ProductID:    f.product.ID,
		DocumentType: string(models.DocumentTypeTechnicalDoc),
		Name:         "Technical File",
		Version:      "1.0",
		File:         fileHeader(t, "tech-file.pdf", "application/pdf", []byte("%PDF-1.4 test")),
	}, testMeta())
	require.NoError(t, err)

	assert.Equal(t, models.DocumentStatusPendingReview, doc.Status)
	assert.Equal(t, "customer-1", doc.UploadedByID)
	assert.Equal(t, "application/pdf", doc.MimeType)
	assert.True(t, strings.HasPrefix(doc.FileURL, f.product.ManufacturerID+"/"+f.product.ID+"/"))

	_, ok := f.store.files[doc.FileURL]
	assert.True(t, ok)
}

func TestDocumentUploadRejectsDisallowedType(t *testing.T) {
	f := newDocumentFixture(t)

	_, err := f.svc.Upload(context.Background(), nil, customerClaims("mfr-1"), &dto.UploadDocumentRequest{
		ProductID:    f.product.ID,
		DocumentType: string(models.DocumentTypeTechnicalDoc),
		Name:         "Setup",
		File:         fileHeader(t, "setup.exe", "application/x-msdownload", []byte("MZ")),
	}, testMeta())
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)

	// Nothing reached the storage backend.
	assert.Empty(t, f.store.files)
}

func TestDocumentUploadRejectsOversizedFile(t *testing.T) {
	f := newDocumentFixture(t)

	// A header literal is enough: the size gate fires before the file is read.
	oversized := &multipart.FileHeader{
		Filename: "huge.pdf",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/pdf"}},
		Size:     validator.MaxFileSize + 1,
	}
	_, err := f.svc.Upload(context.Background(), nil, customerClaims("mfr-1"), &dto.UploadDocumentRequest{
		ProductID:    f.product.ID,
		DocumentType: string(models.DocumentTypeTechnicalDoc),
		Name:         "Huge",
		File:         oversized,
	}, testMeta())
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	assert.Empty(t, f.store.files)
}

func TestDocumentUploadCrossTenantRejected(t *testing.T) {
	f := newDocumentFixture(t)

	_, err := f.svc.Upload(context.Background(), nil, customerClaims("mfr-2"), &dto.UploadDocumentRequest{
		ProductID:    f.product.ID,
		DocumentType: string(models.DocumentTypeTechnicalDoc),
		Name:         "Technical File",
		File:         fileHeader(t, "tech-file.pdf", "application/pdf", []byte("%PDF-1.4")),
	}, testMeta())
	assert.ErrorIs(t, err, apperrors.ErrOtherManufacturer)
	assert.Empty(t, f.store.files)
}

func TestDocumentUploadCleansUpOrphanBlob(t *testing.T) {
	f := newDocumentFixture(t)
	f.documents.createErr = errors.New("insert failed")

	_, err := f.svc.Upload(context.Background(), nil, customerClaims("mfr-1"), &dto.UploadDocumentRequest{
		ProductID:    f.product.ID,
		DocumentType: string(models.DocumentTypeTechnicalDoc),
		Name:         "Technical File",
		File:         fileHeader(t, "tech-file.pdf", "application/pdf", []byte("%PDF-1.4")),
	}, testMeta())
	require.Error(t, err)

	// The blob written before the failed insert is removed again.
	require.Len(t, f.store.deleted, 1)
	assert.Empty(t, f.store.files)
}

func TestDocumentReviewRequiresExpertTier(t *testing.T) {
	f := newDocumentFixture(t)
	doc := f.addDocument(models.DocumentStatusPendingReview, "customer-1")

	_, err := f.svc.Review(nil, staffClaims(models.UserRoleEcRepAssistant), doc.ID, &dto.ReviewDocumentRequest{
		Status: string(models.DocumentStatusApproved),
	}, testMeta())
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestDocumentReviewSelfApproveForbidden(t *testing.T) {
	f := newDocumentFixture(t)
	doc := f.addDocument(models.DocumentStatusPendingReview, "staff-1")

	_, err := f.svc.Review(nil, staffClaims(models.UserRoleEcRepExpert), doc.ID, &dto.ReviewDocumentRequest{
		Status: string(models.DocumentStatusApproved),
	}, testMeta())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestDocumentReview(t *testing.T) {
	f := newDocumentFixture(t)
	doc := f.addDocument(models.DocumentStatusPendingReview, "customer-1")

	reviewed, err := f.svc.Review(nil, staffClaims(models.UserRoleEcRepExpert), doc.ID, &dto.ReviewDocumentRequest{
		Status:      string(models.DocumentStatusApproved),
		ReviewNotes: "All annexes present.",
	}, testMeta())
	require.NoError(t, err)

	assert.Equal(t, models.DocumentStatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedByID)
	assert.Equal(t, "staff-1", *reviewed.ReviewedByID)
	assert.Equal(t, "All annexes present.", reviewed.ReviewNotes)
}

func TestDocumentReplace(t *testing.T) {
	f := newDocumentFixture(t)
	doc := f.addDocument(models.DocumentStatusApproved, "customer-1")
	reviewer := "staff-9"
	doc.ReviewedByID = &reviewer
	doc.ReviewNotes = "Approved previously"

	// Two existing version rows; the next archive entry gets number 3.
	f.documents.versions = append(f.documents.versions,
		&models.DocumentVersion{DocumentID: doc.ID, VersionNumber: 1, FileURL: "old/v1.pdf", CreatedByID: "customer-1"},
		&models.DocumentVersion{DocumentID: doc.ID, VersionNumber: 2, FileURL: "old/v2.pdf", CreatedByID: "customer-1"},
	)
	oldFileURL := doc.FileURL

	replaced, err := f.svc.Replace(context.Background(), nil, customerClaims("mfr-1"), doc.ID, &dto.ReplaceDocumentRequest{
		ChangesSummary: "Updated clinical data",
		Version:        "2.0",
		File:           fileHeader(t, "tech-file-v2.pdf", "application/pdf", []byte("%PDF-1.4 v2")),
	}, testMeta())
	require.NoError(t, err)

	// Prior file reference is archived with the next version number.
	archived := f.documents.versions[len(f.documents.versions)-1]
	assert.Equal(t, 3, archived.VersionNumber)
	assert.Equal(t, oldFileURL, archived.FileURL)
	assert.Equal(t, "Updated clinical data", archived.ChangesSummary)

	// The document goes back through review from scratch.
	assert.Equal(t, models.DocumentStatusPendingReview, replaced.Status)
	assert.Nil(t, replaced.ReviewedByID)
	assert.Empty(t, replaced.ReviewNotes)
	assert.Equal(t, "2.0", replaced.Version)
	assert.NotEqual(t, oldFileURL, replaced.FileURL)
}

func TestDocumentDeleteRequiresExpertTier(t *testing.T) {
	f := newDocumentFixture(t)
	doc := f.addDocument(models.DocumentStatusRejected, "customer-1")

	err := f.svc.Delete(context.Background(), nil, customerClaims("mfr-1"), doc.ID, testMeta())
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	err = f.svc.Delete(context.Background(), nil, staffClaims(models.UserRoleEcRepExpert), doc.ID, testMeta())
	require.NoError(t, err)
	assert.Empty(t, f.documents.documents)
	assert.Contains(t, f.store.deleted, doc.FileURL)
}

func TestDocumentGetCrossTenantRejected(t *testing.T) {
	f := newDocumentFixture(t)
	doc := f.addDocument(models.DocumentStatusPendingReview, "customer-1")

	_, err := f.svc.GetByID(nil, customerClaims("mfr-2"), doc.ID)
	assert.ErrorIs(t, err, apperrors.ErrOtherManufacturer)
}
