package constants

import "math"

// Standard Response Field Keys
const (
	ResponseFieldSuccess    = "success"
	ResponseFieldMessage    = "message"
	ResponseFieldErrors     = "errors"
	ResponseFieldPagination = "pagination"
)

// Pagination describes the page window returned by list endpoints.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// NewPagination computes the page count for a total record count.
func NewPagination(page, limit int, total int64) Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{
		Current: page,
		Pages:   pages,
		Total:   total,
	}
}

// BuildSuccessResponse builds the uniform {success:true, message} envelope.
func BuildSuccessResponse(message string) map[string]any {
	return map[string]any{
		ResponseFieldSuccess: true,
		ResponseFieldMessage: message,
	}
}

// BuildErrorResponse builds the uniform {success:false, message} envelope.
func BuildErrorResponse(message string) map[string]any {
	return map[string]any{
		ResponseFieldSuccess: false,
		ResponseFieldMessage: message,
	}
}

// BuildValidationErrorResponse attaches the complete field failure set to
// the error envelope.
func BuildValidationErrorResponse(message string, errs any) map[string]any {
	return map[string]any{
		ResponseFieldSuccess: false,
		ResponseFieldMessage: message,
		ResponseFieldErrors:  errs,
	}
}

// BuildDataResponse builds a success envelope carrying named payload fields.
func BuildDataResponse(fields map[string]any) map[string]any {
	response := map[string]any{
		ResponseFieldSuccess: true,
	}
	for k, v := range fields {
		response[k] = v
	}
	return response
}

// BuildListResponse builds a success envelope carrying a named list and its
// pagination window.
func BuildListResponse(key string, items any, pagination Pagination) map[string]any {
	return map[string]any{
		ResponseFieldSuccess:    true,
		key:                     items,
		ResponseFieldPagination: pagination,
	}
}
