package column

import (
	"fmt"
	"strings"
	"time"

	"db-scaffold/internal/schema"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	sampleFrom = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	sampleTo   = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
)

// NewFaker returns a faker seeded for reproducible samples.
func NewFaker(seed int64) *gofakeit.Faker {
	return gofakeit.New(seed)
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}

// hasWord reports whether w is one of the space-separated words of s.
func hasWord(s, w string) bool {
	for _, f := range strings.Fields(s) {
		if f == w {
			return true
		}
	}
	return false
}

// Sample returns an example value for col, used as a form placeholder hint.
// Secrets and key columns get no sample.
func Sample(f *gofakeit.Faker, col schema.Column) string {
	dataType := strings.ToLower(col.DataType)
	colName := strings.ToLower(col.Name)
	meaning := col.Meaning

	if col.IsPK || col.IsAutoInc || strings.Contains(meaning, "password") || strings.Contains(colName, "password") {
		return ""
	}

	// 1. string types: meaning first
	if strings.Contains(dataType, "char") || strings.Contains(dataType, "text") {
		isID := strings.HasSuffix(colName, "_id") || colName == "id"

		switch {
		case isID:
			return ""
		case strings.Contains(meaning, "phone") || strings.Contains(colName, "phone"):
			return truncate(f.Phone(), col.Length)
		case strings.Contains(meaning, "email") || strings.Contains(colName, "email"):
			return truncate(f.Email(), col.Length)
		case strings.Contains(meaning, "url") || strings.Contains(colName, "url"):
			return truncate(f.URL(), col.Length)
		case strings.Contains(meaning, "zipcode") || strings.Contains(colName, "zip"):
			return truncate(f.Zip(), col.Length)
		case strings.Contains(meaning, "address") || strings.Contains(colName, "address"):
			return truncate(f.Street(), col.Length)
		case strings.Contains(meaning, "city") || strings.Contains(colName, "city"):
			return truncate(f.City(), col.Length)
		case strings.Contains(meaning, "country") || strings.Contains(colName, "country"):
			return truncate(f.Country(), col.Length)
		case strings.Contains(meaning, "name") || strings.Contains(colName, "name") ||
			strings.Contains(colName, "first") || strings.Contains(colName, "last"):
			return truncate(f.Name(), col.Length)
		case strings.Contains(meaning, "title") || strings.Contains(meaning, "subject"):
			return truncate(strings.TrimSuffix(f.Sentence(3), "."), col.Length)
		case strings.Contains(meaning, "description") || strings.Contains(meaning, "content") ||
			strings.Contains(meaning, "comment") || strings.Contains(dataType, "text"):
			return truncate(f.Sentence(8), col.Length)
		case hasWord(meaning, "ip") || hasWord(strings.ReplaceAll(colName, "_", " "), "ip"):
			return truncate(f.IPv4Address(), col.Length)
		}

		if col.Length > 0 && col.Length < 20 {
			return truncate(f.Word(), col.Length)
		}
		return truncate(f.Sentence(3), col.Length)
	}

	// 2. dates and times
	switch dataType {
	case "date":
		return f.DateRange(sampleFrom, sampleTo).Format("2006-01-02")
	case "time":
		return f.DateRange(sampleFrom, sampleTo).Format("15:04:05")
	case "year":
		return fmt.Sprintf("%d", f.Number(2000, 2025))
	case "datetime", "timestamp":
		return f.DateRange(sampleFrom, sampleTo).Format("2006-01-02 15:04:05")
	}

	// 3. numbers
	if strings.Contains(dataType, "int") {
		if strings.HasSuffix(colName, "_id") {
			return ""
		}
		if strings.Contains(meaning, "yesno") || strings.HasPrefix(colName, "is_") {
			return fmt.Sprintf("%d", f.Number(0, 1))
		}
		if dataType == "tinyint" {
			return fmt.Sprintf("%d", f.Number(0, 127))
		}
		return fmt.Sprintf("%d", f.Number(1, 1000))
	}
	if dataType == "decimal" || dataType == "float" || dataType == "double" {
		return fmt.Sprintf("%.2f", f.Price(0.99, 99.99))
	}

	return ""
}
