package dto

// Route is a permitted endpoint in transport form.
type Route struct {
	URI         string `json:"uri" validate:"required,min=1,max=255"`
	RequestType string `json:"requestType" validate:"required,oneof=GET POST PATCH PUT DELETE"`
}

// CreateRoleRequest is the body of POST /api/role.
type CreateRoleRequest struct {
	Name   string  `json:"name" validate:"required,min=1,max=255"`
	Routes []Route `json:"routes" validate:"omitempty,dive"`
}

// UpdateRoleRequest is the body of PATCH /api/role.
type UpdateRoleRequest struct {
	Name         string  `json:"roleName" validate:"required,min=1,max=255"`
	AddRoutes    []Route `json:"addRoutes" validate:"omitempty,dive"`
	RemoveRoutes []Route `json:"removeRoutes" validate:"omitempty,dive"`
}

// Role is the transport representation of a role.
type Role struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Routes []Route `json:"routes"`
}
