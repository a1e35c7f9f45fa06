package dto

import "arportal/internal/models"

// DashboardStats is the tenant-scoped overview payload.
type DashboardStats struct {
	TotalProducts          int64                          `json:"totalProducts"`
	ProductsByStatus       map[models.ProductStatus]int64 `json:"productsByStatus"`
	TotalDocuments         int64                          `json:"totalDocuments"`
	DocumentsPendingReview int64                          `json:"documentsPendingReview"`
	RecentProducts         []models.Product               `json:"recentProducts"`
	RecentDocuments        []models.Document              `json:"recentDocuments"`
}
