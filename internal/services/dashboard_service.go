package services

import (
	"arportal/internal/auth"
	"arportal/internal/repositories"
	"arportal/internal/scope"
	"arportal/internal/services/dto"
	"arportal/pkg/apperrors"

	"gorm.io/gorm"
)

const recentItemCount = 5

type DashboardService interface {
	Stats(db *gorm.DB, claims *auth.Claims) (*dto.DashboardStats, error)
}

type DashboardServiceImpl struct {
	productRepo  repositories.ProductRepository
	documentRepo repositories.DocumentRepository
}

func NewDashboardService(productRepo repositories.ProductRepository, documentRepo repositories.DocumentRepository) DashboardService {
	return &DashboardServiceImpl{productRepo: productRepo, documentRepo: documentRepo}
}

// Stats assembles the tenant-scoped overview. Customers see their own
// manufacturer's numbers; staff see the whole portfolio.
func (s *DashboardServiceImpl) Stats(db *gorm.DB, claims *auth.Claims) (*dto.DashboardStats, error) {
	productScope, err := scope.ForProducts(claims, "")
	if err != nil {
		return nil, err
	}
	documentScope, err := scope.ForDocuments(claims, "")
	if err != nil {
		return nil, err
	}

	byStatus, err := s.productRepo.CountByStatus(db, productScope)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	var totalProducts int64
	for _, n := range byStatus {
		totalProducts += n
	}

	totalDocuments, err := s.documentRepo.Count(db, documentScope)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	pendingReview, err := s.documentRepo.CountPendingReview(db, documentScope)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	recentProducts, err := s.productRepo.FindRecent(db, recentItemCount, productScope)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	recentDocuments, err := s.documentRepo.FindRecent(db, recentItemCount, documentScope)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.DashboardStats{
		TotalProducts:          totalProducts,
		ProductsByStatus:       byStatus,
		TotalDocuments:         totalDocuments,
		DocumentsPendingReview: pendingReview,
		RecentProducts:         recentProducts,
		RecentDocuments:        recentDocuments,
	}, nil
}
