// Package dto defines request and response bodies for the HTTP API.
package dto

// CreateTeamRequest is the body of POST /api/team.
type CreateTeamRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=255"`
	Members     []string `json:"members" validate:"required,min=1,dive,required"`
	ProjectName string   `json:"projectName" validate:"required,min=1,max=255"`
	DevpostURL  string   `json:"devpostURL" validate:"omitempty,url"`
}

// JoinTeamRequest is the body of PATCH /api/team/join.
type JoinTeamRequest struct {
	TeamName string `json:"teamName" validate:"required,min=1,max=255"`
}

// Team is the transport representation of a team.
type Team struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Members     []string `json:"members"`
	ProjectName string   `json:"projectName"`
	DevpostURL  string   `json:"devpostURL,omitempty"`
}
