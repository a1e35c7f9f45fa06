package services

import (
	"bytes"
	"context"
	"io"
	"time"

	"arportal/internal/auth"
	"arportal/internal/models"
	"arportal/internal/repositories"
	"arportal/internal/scope"
	"arportal/internal/services/dto"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hand-written fakes backed by maps. The stateless repositories take the db
// handle per call, so the fakes ignore it entirely.

type mockProductRepo struct {
	products  map[string]*models.Product
	createErr error
	updateErr error
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[string]*models.Product)}
}

func (m *mockProductRepo) add(p *models.Product) *models.Product {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m.products[p.ID] = p
	return p
}

func (m *mockProductRepo) Create(db *gorm.DB, p *models.Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.add(p)
	return nil
}

func (m *mockProductRepo) FindByID(db *gorm.DB, id string) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, repositories.ErrProductNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *mockProductRepo) FindAll(db *gorm.DB, f repositories.ProductFilter, s scope.GormScope) ([]models.Product, int64, error) {
	var out []models.Product
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (m *mockProductRepo) Update(db *gorm.DB, p *models.Product) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) UpdateStatus(db *gorm.DB, id string, status models.ProductStatus) error {
	p, ok := m.products[id]
	if !ok {
		return repositories.ErrProductNotFound
	}
	p.Status = status
	return nil
}

func (m *mockProductRepo) CountByStatus(db *gorm.DB, s scope.GormScope) (map[models.ProductStatus]int64, error) {
	counts := make(map[models.ProductStatus]int64)
	for _, p := range m.products {
		counts[p.Status]++
	}
	return counts, nil
}

func (m *mockProductRepo) FindRecent(db *gorm.DB, limit int, s scope.GormScope) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if len(out) == limit {
			break
		}
		out = append(out, *p)
	}
	return out, nil
}

type mockDocumentRepo struct {
	documents map[string]*models.Document
	versions  []*models.DocumentVersion
	createErr error
}

func newMockDocumentRepo() *mockDocumentRepo {
	return &mockDocumentRepo{documents: make(map[string]*models.Document)}
}

func (m *mockDocumentRepo) add(d *models.Document) *models.Document {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	m.documents[d.ID] = d
	return d
}

func (m *mockDocumentRepo) Create(db *gorm.DB, d *models.Document) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.add(d)
	return nil
}

func (m *mockDocumentRepo) FindByID(db *gorm.DB, id string) (*models.Document, error) {
	d, ok := m.documents[id]
	if !ok {
		return nil, repositories.ErrDocumentNotFound
	}
	copied := *d
	return &copied, nil
}

func (m *mockDocumentRepo) FindAll(db *gorm.DB, f repositories.DocumentFilter, s scope.GormScope) ([]models.Document, int64, error) {
	var out []models.Document
	for _, d := range m.documents {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (m *mockDocumentRepo) Update(db *gorm.DB, d *models.Document) error {
	m.documents[d.ID] = d
	return nil
}

func (m *mockDocumentRepo) Delete(db *gorm.DB, id string) error {
	delete(m.documents, id)
	return nil
}

func (m *mockDocumentRepo) CountPendingReview(db *gorm.DB, s scope.GormScope) (int64, error) {
	var count int64
	for _, d := range m.documents {
		if d.Status == models.DocumentStatusPendingReview {
			count++
		}
	}
	return count, nil
}

func (m *mockDocumentRepo) Count(db *gorm.DB, s scope.GormScope) (int64, error) {
	return int64(len(m.documents)), nil
}

func (m *mockDocumentRepo) FindRecent(db *gorm.DB, limit int, s scope.GormScope) ([]models.Document, error) {
	var out []models.Document
	for _, d := range m.documents {
		if len(out) == limit {
			break
		}
		out = append(out, *d)
	}
	return out, nil
}

func (m *mockDocumentRepo) CreateVersion(db *gorm.DB, v *models.DocumentVersion) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	m.versions = append(m.versions, v)
	return nil
}

func (m *mockDocumentRepo) CountVersions(db *gorm.DB, documentID string) (int64, error) {
	var count int64
	for _, v := range m.versions {
		if v.DocumentID == documentID {
			count++
		}
	}
	return count, nil
}

func (m *mockDocumentRepo) FindVersions(db *gorm.DB, documentID string) ([]models.DocumentVersion, error) {
	var out []models.DocumentVersion
	for _, v := range m.versions {
		if v.DocumentID == documentID {
			out = append(out, *v)
		}
	}
	return out, nil
}

type mockSubmissionRepo struct {
	submissions map[string]*models.Submission
}

func newMockSubmissionRepo() *mockSubmissionRepo {
	return &mockSubmissionRepo{submissions: make(map[string]*models.Submission)}
}

func (m *mockSubmissionRepo) add(s *models.Submission) *models.Submission {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	m.submissions[s.ID] = s
	return s
}

func (m *mockSubmissionRepo) Create(db *gorm.DB, s *models.Submission) error {
	m.add(s)
	return nil
}

func (m *mockSubmissionRepo) FindByID(db *gorm.DB, id string) (*models.Submission, error) {
	s, ok := m.submissions[id]
	if !ok {
		return nil, repositories.ErrSubmissionNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *mockSubmissionRepo) FindAll(db *gorm.DB, f repositories.SubmissionFilter, s scope.GormScope) ([]models.Submission, int64, error) {
	var out []models.Submission
	for _, sub := range m.submissions {
		out = append(out, *sub)
	}
	return out, int64(len(out)), nil
}

func (m *mockSubmissionRepo) Update(db *gorm.DB, s *models.Submission) error {
	m.submissions[s.ID] = s
	return nil
}

func (m *mockSubmissionRepo) CountByStatus(db *gorm.DB, s scope.GormScope) (map[models.SubmissionStatus]int64, error) {
	counts := make(map[models.SubmissionStatus]int64)
	for _, sub := range m.submissions {
		counts[sub.Status]++
	}
	return counts, nil
}

type mockUserRepo struct {
	users         map[string]*models.User
	refreshTokens map[string]*models.RefreshToken
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:         make(map[string]*models.User),
		refreshTokens: make(map[string]*models.RefreshToken),
	}
}

func (m *mockUserRepo) add(u *models.User) *models.User {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	m.users[u.ID] = u
	return u
}

func (m *mockUserRepo) Create(db *gorm.DB, user *models.User) error {
	m.add(user)
	return nil
}

func (m *mockUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserRepo) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (m *mockUserRepo) Update(db *gorm.DB, user *models.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) UpdateLastLogin(db *gorm.DB, userID string, at time.Time) error {
	u, ok := m.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.LastLoginAt = &at
	return nil
}

func (m *mockUserRepo) FindWithFilter(db *gorm.DB, f repositories.UserFilter) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (m *mockUserRepo) CreateRefreshToken(db *gorm.DB, token *models.RefreshToken) error {
	m.refreshTokens[token.Token] = token
	return nil
}

func (m *mockUserRepo) FindRefreshToken(db *gorm.DB, token string) (*models.RefreshToken, error) {
	rt, ok := m.refreshTokens[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rt, nil
}

func (m *mockUserRepo) DeleteRefreshToken(db *gorm.DB, token string) error {
	delete(m.refreshTokens, token)
	return nil
}

func (m *mockUserRepo) DeleteUserRefreshTokens(db *gorm.DB, userID string) error {
	for token, rt := range m.refreshTokens {
		if rt.UserID == userID {
			delete(m.refreshTokens, token)
		}
	}
	return nil
}

type mockManufacturerRepo struct {
	manufacturers map[string]*models.Manufacturer
}

func newMockManufacturerRepo() *mockManufacturerRepo {
	return &mockManufacturerRepo{manufacturers: make(map[string]*models.Manufacturer)}
}

func (m *mockManufacturerRepo) add(mf *models.Manufacturer) *models.Manufacturer {
	if mf.ID == "" {
		mf.ID = uuid.NewString()
	}
	m.manufacturers[mf.ID] = mf
	return mf
}

func (m *mockManufacturerRepo) Create(db *gorm.DB, mf *models.Manufacturer) error {
	m.add(mf)
	return nil
}

func (m *mockManufacturerRepo) FindByID(db *gorm.DB, id string) (*models.Manufacturer, error) {
	mf, ok := m.manufacturers[id]
	if !ok {
		return nil, repositories.ErrManufacturerNotFound
	}
	copied := *mf
	return &copied, nil
}

func (m *mockManufacturerRepo) FindAll(db *gorm.DB, f repositories.ManufacturerFilter, s scope.GormScope) ([]models.Manufacturer, int64, error) {
	var out []models.Manufacturer
	for _, mf := range m.manufacturers {
		out = append(out, *mf)
	}
	return out, int64(len(out)), nil
}

func (m *mockManufacturerRepo) Update(db *gorm.DB, mf *models.Manufacturer) error {
	m.manufacturers[mf.ID] = mf
	return nil
}

type mockCertificateRepo struct {
	certificates map[string]*models.Certificate
}

func newMockCertificateRepo() *mockCertificateRepo {
	return &mockCertificateRepo{certificates: make(map[string]*models.Certificate)}
}

func (m *mockCertificateRepo) add(c *models.Certificate) *models.Certificate {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m.certificates[c.ID] = c
	return c
}

func (m *mockCertificateRepo) Create(db *gorm.DB, c *models.Certificate) error {
	m.add(c)
	return nil
}

func (m *mockCertificateRepo) FindByID(db *gorm.DB, id string) (*models.Certificate, error) {
	c, ok := m.certificates[id]
	if !ok {
		return nil, repositories.ErrCertificateNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *mockCertificateRepo) FindAll(db *gorm.DB, f repositories.CertificateFilter, s scope.GormScope) ([]models.Certificate, int64, error) {
	var out []models.Certificate
	for _, c := range m.certificates {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (m *mockCertificateRepo) Update(db *gorm.DB, c *models.Certificate) error {
	m.certificates[c.ID] = c
	return nil
}

func (m *mockCertificateRepo) Delete(db *gorm.DB, id string) error {
	delete(m.certificates, id)
	return nil
}

func (m *mockCertificateRepo) FindExpiringBefore(db *gorm.DB, deadline time.Time) ([]models.Certificate, error) {
	var out []models.Certificate
	for _, c := range m.certificates {
		if !c.ExpiryDate.After(deadline) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCertificateRepo) UpdateStatus(db *gorm.DB, id string, status models.CertificateStatus) error {
	c, ok := m.certificates[id]
	if !ok {
		return repositories.ErrCertificateNotFound
	}
	c.Status = status
	return nil
}

func (m *mockCertificateRepo) MarkExpiringSoonAlertSent(db *gorm.DB, id string, at time.Time) error {
	c, ok := m.certificates[id]
	if !ok {
		return repositories.ErrCertificateNotFound
	}
	c.ExpiringSoonAlertSentAt = &at
	return nil
}

func (m *mockCertificateRepo) MarkExpiryAlertSent(db *gorm.DB, id string, at time.Time) error {
	c, ok := m.certificates[id]
	if !ok {
		return repositories.ErrCertificateNotFound
	}
	c.ExpiryAlertSentAt = &at
	return nil
}

type auditRecord struct {
	Action     models.AuditAction
	EntityType string
	EntityID   string
}

type mockAuditService struct {
	records []auditRecord
}

func (m *mockAuditService) Record(db *gorm.DB, meta RequestMeta, action models.AuditAction, entityType, entityID string, oldValues, newValues interface{}) {
	m.records = append(m.records, auditRecord{Action: action, EntityType: entityType, EntityID: entityID})
}

func (m *mockAuditService) List(db *gorm.DB, claims *auth.Claims, q *dto.AuditLogQuery) ([]models.AuditLog, int64, error) {
	return nil, 0, nil
}

func (m *mockAuditService) last() *auditRecord {
	if len(m.records) == 0 {
		return nil
	}
	return &m.records[len(m.records)-1]
}

type mockStorage struct {
	files   map[string][]byte
	deleted []string
	saveErr error
}

func newMockStorage() *mockStorage {
	return &mockStorage{files: make(map[string][]byte)}
}

func (m *mockStorage) Save(ctx context.Context, path string, reader io.Reader, size int64, contentType string) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	m.files[path] = data
	return path, nil
}

func (m *mockStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *mockStorage) Delete(ctx context.Context, path string) error {
	delete(m.files, path)
	m.deleted = append(m.deleted, path)
	return nil
}

func (m *mockStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := m.files[path]
	return ok, nil
}

func (m *mockStorage) Size(ctx context.Context, path string) (int64, error) {
	data, ok := m.files[path]
	if !ok {
		return 0, io.ErrUnexpectedEOF
	}
	return int64(len(data)), nil
}
