package constants

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination Query Parameters
const (
	QueryParamPage      = "page"
	QueryParamLimit     = "limit"
	QueryParamQuery     = "q"
	QueryParamRole      = "role"
	QueryParamExpertise = "expertise"
)

// Default Pagination Values (as strings for query parsing)
const (
	DefaultPage  = "1"
	DefaultLimit = "10"
)

// Pagination Limits (as integers for validation)
const (
	MinPage  = 1
	MinLimit = 1
	MaxLimit = 100
)

// PaginationParams holds the parsed page window for a list request.
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePaginationParams parses page and limit query parameters, clamping
// them to sane bounds and computing the skip offset.
func ParsePaginationParams(c *gin.Context) PaginationParams {
	pageStr := c.DefaultQuery(QueryParamPage, DefaultPage)
	limitStr := c.DefaultQuery(QueryParamLimit, DefaultLimit)

	page, _ := strconv.Atoi(pageStr)
	limit, _ := strconv.Atoi(limitStr)

	if page < MinPage {
		page = MinPage
	}
	if limit < MinLimit {
		limit = MinLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
