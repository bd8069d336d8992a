package utils

import "github.com/gofiber/fiber/v2"

// Flash severities carried in the response envelope. These replace the
// session-backed flash messages of a classic server-rendered app: the
// message/severity pair travels in the response body instead.
const (
	SeveritySuccess = "success"
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// StandardResponse is the envelope for every API response.
type StandardResponse struct {
	Status   string      `json:"status"`
	Code     int         `json:"code"`
	Severity string      `json:"severity"`
	Message  string      `json:"message"`
	Data     interface{} `json:"data,omitempty"`
	Meta     interface{} `json:"meta,omitempty"`
}

// PaginationMeta represents pagination metadata
type PaginationMeta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// SuccessResponse sends a success response
func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:   "success",
		Code:     code,
		Severity: SeveritySuccess,
		Message:  message,
		Data:     data,
	})
}

// SuccessWithMetaResponse sends a success response with pagination meta
func SuccessWithMetaResponse(c *fiber.Ctx, code int, message string, data interface{}, meta interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:   "success",
		Code:     code,
		Severity: SeveritySuccess,
		Message:  message,
		Data:     data,
		Meta:     meta,
	})
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return FlashResponse(c, code, SeverityError, message)
}

// FlashResponse sends an error-path response with an explicit severity: a
// duplicate favorite is an "info" notice, a failed form field an "error".
func FlashResponse(c *fiber.Ctx, code int, severity, message string) error {
	status := "error"
	if code >= 500 {
		status = "fail"
	}
	return c.Status(code).JSON(StandardResponse{
		Status:   status,
		Code:     code,
		Severity: severity,
		Message:  message,
	})
}

// CreatePaginationMeta creates pagination metadata
func CreatePaginationMeta(page, limit int, total int64) PaginationMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}

	return PaginationMeta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
