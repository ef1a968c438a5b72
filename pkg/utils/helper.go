package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 0 {
		return defaultValue
	}

	return result
}

// GenerateTicketNo creates a short opaque ticket code: first 10 hex
// chars of a random UUID, uppercased. No collision retry.
func GenerateTicketNo() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(hex[:10])
}
