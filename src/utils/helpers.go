package utils

import (
	"math"

	"github.com/google/uuid"
)

// Paginate builds the pagination envelope returned alongside list results.
func Paginate(total int64, page, perPage int) map[string]interface{} {
	// Avoid division by zero
	if perPage <= 0 {
		perPage = 1
	}

	totalPages := int(math.Ceil(float64(total) / float64(perPage)))

	var nextPage, prevPage *int
	if page < totalPages {
		next := page + 1
		nextPage = &next
	}
	if page > 1 {
		prev := page - 1
		prevPage = &prev
	}

	return map[string]interface{}{
		"current_page":   page,
		"items_per_page": perPage,
		"next_page":      nextPage,
		"previous_page":  prevPage,
		"total_count":    total,
		"total_pages":    totalPages,
	}
}

// GenerateID returns a fresh opaque record id.
func GenerateID() string {
	return uuid.NewString()
}

// ServiceError carries an HTTP status alongside the message.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}
