package dto

// APIResponse is the standard success envelope for all endpoints.
type APIResponse struct {
	Data interface{} `json:"data"`
}

// NewAPIResponse wraps data in the standard success envelope.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{Data: data}
}

// PageInfo describes the pagination state of a list response.
type PageInfo struct {
	Page       int `json:"page" example:"1"`
	PageSize   int `json:"pageSize" example:"20"`
	TotalItems int `json:"totalItems" example:"42"`
	TotalPages int `json:"totalPages" example:"3"`
}

// PagedResponse is the standard envelope for paginated list endpoints.
type PagedResponse struct {
	Data     interface{} `json:"data"`
	PageInfo PageInfo    `json:"pageInfo"`
}

// NewPagedResponse wraps a list and its pagination state.
func NewPagedResponse(data interface{}, page, pageSize, totalItems int) PagedResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}
	return PagedResponse{
		Data: data,
		PageInfo: PageInfo{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: totalItems,
			TotalPages: totalPages,
		},
	}
}

// MessageResponse is used for endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed"`
}
