package dto

import (
	"time"

	"github.com/SscSPs/fiscal_balance/internal/core/domain"
)

// CreateWorkplaceRequest defines the data needed to create a new workplace.
type CreateWorkplaceRequest struct {
	Name                string `json:"name" binding:"required,max=255"`
	Description         string `json:"description" binding:"max=1024"`
	DefaultCurrencyCode string `json:"defaultCurrencyCode" binding:"required,currency_code" example:"USD"`
}

// AddUserToWorkplaceRequest adds an existing user to a workplace.
type AddUserToWorkplaceRequest struct {
	UserID string                   `json:"userID" binding:"required"`
	Role   domain.UserWorkplaceRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// WorkplaceResponse defines the data returned for a workplace.
type WorkplaceResponse struct {
	WorkplaceID         string    `json:"workplaceID"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	DefaultCurrencyCode string    `json:"defaultCurrencyCode"`
	IsActive            bool      `json:"isActive"`
	CreatedAt           time.Time `json:"createdAt"`
	CreatedBy           string    `json:"createdBy"`
}

// WorkplaceMemberResponse describes one member of a workplace.
type WorkplaceMemberResponse struct {
	UserID   string                   `json:"userID"`
	UserName string                   `json:"userName"`
	Role     domain.UserWorkplaceRole `json:"role"`
	JoinedAt time.Time                `json:"joinedAt"`
}

// ListWorkplacesResponse wraps the caller's workplaces.
type ListWorkplacesResponse struct {
	Workplaces []WorkplaceResponse `json:"workplaces"`
}

// ToWorkplaceResponse converts a domain.Workplace to WorkplaceResponse DTO.
func ToWorkplaceResponse(w domain.Workplace) WorkplaceResponse {
	return WorkplaceResponse{
		WorkplaceID:         w.WorkplaceID,
		Name:                w.Name,
		Description:         w.Description,
		DefaultCurrencyCode: w.DefaultCurrencyCode,
		IsActive:            w.IsActive,
		CreatedAt:           w.CreatedAt,
		CreatedBy:           w.CreatedBy,
	}
}

// ToListWorkplacesResponse converts a slice of workplaces.
func ToListWorkplacesResponse(workplaces []domain.Workplace) ListWorkplacesResponse {
	res := ListWorkplacesResponse{Workplaces: make([]WorkplaceResponse, len(workplaces))}
	for i, w := range workplaces {
		res.Workplaces[i] = ToWorkplaceResponse(w)
	}
	return res
}

// ToWorkplaceMemberResponses converts memberships.
func ToWorkplaceMemberResponses(members []domain.UserWorkplace) []WorkplaceMemberResponse {
	res := make([]WorkplaceMemberResponse, len(members))
	for i, m := range members {
		res[i] = WorkplaceMemberResponse{UserID: m.UserID, UserName: m.UserName, Role: m.Role, JoinedAt: m.JoinedAt}
	}
	return res
}
