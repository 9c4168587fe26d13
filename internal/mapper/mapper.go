// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"hacker-api/internal/entities"
	"hacker-api/internal/transport/http/dto"
)

// FromCreateTeamRequest builds an entities.Team from the create request.
func FromCreateTeamRequest(src dto.CreateTeamRequest) entities.Team {
	members := make([]string, len(src.Members))
	copy(members, src.Members)

	return entities.Team{
		Name:        src.Name,
		Members:     members,
		ProjectName: src.ProjectName,
		DevpostURL:  src.DevpostURL,
	}
}

// ToDTOTeam maps entities.Team to transport model.
func ToDTOTeam(team entities.Team) dto.Team {
	members := make([]string, len(team.Members))
	copy(members, team.Members)

	return dto.Team{
		ID:          team.ID,
		Name:        team.Name,
		Members:     members,
		ProjectName: team.ProjectName,
		DevpostURL:  team.DevpostURL,
	}
}

// FromRegisterHackerRequest builds an entities.Hacker from the register request.
func FromRegisterHackerRequest(src dto.RegisterHackerRequest) entities.Hacker {
	return entities.Hacker{
		AccountID: src.AccountID,
		School:    src.School,
	}
}

// ToDTOHacker maps entities.Hacker to transport model.
func ToDTOHacker(h entities.Hacker) dto.Hacker {
	return dto.Hacker{
		ID:        h.ID,
		AccountID: h.AccountID,
		TeamID:    h.TeamID,
		School:    h.School,
		Status:    string(h.Status),
	}
}

// FromDTORoutes maps transport routes to entities.
func FromDTORoutes(src []dto.Route) []entities.Route {
	routes := make([]entities.Route, 0, len(src))
	for _, rt := range src {
		routes = append(routes, entities.Route{URI: rt.URI, RequestType: rt.RequestType})
	}
	return routes
}

// ToDTORole maps entities.Role to transport model.
func ToDTORole(r entities.Role) dto.Role {
	routes := make([]dto.Route, 0, len(r.Routes))
	for _, rt := range r.Routes {
		routes = append(routes, dto.Route{URI: rt.URI, RequestType: rt.RequestType})
	}
	return dto.Role{ID: r.ID, Name: r.Name, Routes: routes}
}

// ToDTORoles maps a slice of roles.
func ToDTORoles(list []entities.Role) []dto.Role {
	res := make([]dto.Role, 0, len(list))
	for _, r := range list {
		res = append(res, ToDTORole(r))
	}
	return res
}
