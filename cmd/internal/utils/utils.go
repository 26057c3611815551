package utils

import (
	"reflect"
	"strings"
)

// Sanitize trims every string, *string and []string field of the struct o
// points to.
func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Ptr:
			if !field.IsNil() && field.Elem().Kind() == reflect.String {
				field.Elem().SetString(sanitizeString(field.Elem().String()))
			}

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}

// ContainsFold reports whether any of fields contains q, ignoring case.
// An empty q matches everything.
func ContainsFold(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

type Page struct {
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
}

// Paginate returns the 1-based page of items. A size below 1 returns
// everything as a single page.
func Paginate[T any](items []T, page, size int) ([]T, Page) {
	total := len(items)
	if size < 1 {
		return items, Page{Page: 1, Size: total, Total: total}
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= total {
		return []T{}, Page{Page: page, Size: size, Total: total}
	}
	end := start + size
	if end > total {
		end = total
	}
	return items[start:end], Page{Page: page, Size: size, Total: total}
}
