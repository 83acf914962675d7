package util

import "strconv"

// DefaultPageSize matches the admin list view default.
const DefaultPageSize = 4

// Calculate turns a zero-based page index into an offset/limit pair.
func Calculate(page, size int) (offset, limit int) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = DefaultPageSize
	}
	return page * size, size
}

// TotalPages is ceil(total/size).
func TotalPages(total int64, size int) int64 {
	if size < 1 {
		size = DefaultPageSize
	}
	return (total + int64(size) - 1) / int64(size)
}

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
