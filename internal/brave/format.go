package brave

import (
	"fmt"
	"strings"
)

// NoResultsText 两个工具共用的空结果提示
const NoResultsText = "No results found"

// maxReviewSnippets 每个地点最多展示的评论片段数
const maxReviewSnippets = 5

// Record 格式化输出的单条结果，网页结果与地点结果是它的两个变体
type Record interface {
	appendTo(b *strings.Builder)
}

// WebRecord 网页搜索结果
type WebRecord struct {
	Title       string
	Description string
	URL         string
}

func (r WebRecord) appendTo(b *strings.Builder) {
	fmt.Fprintf(b, "Title: %s\nDescription: %s\nURL: %s", r.Title, r.Description, r.URL)
}

// LocalRecord 本地商户/地点结果
type LocalRecord struct {
	Name        string
	Address     string
	Phone       string
	Rating      *float64 // nil表示上游未提供评分
	RatingCount int
	PriceRange  string
	Hours       []string
	Description string
	Reviews     []string
}

func (r LocalRecord) appendTo(b *strings.Builder) {
	name := r.Name
	if name == "" {
		name = "Unknown"
	}
	rating := "N/A"
	if r.Rating != nil {
		rating = fmt.Sprintf("%g", *r.Rating)
	}
	hours := "N/A"
	if len(r.Hours) > 0 {
		hours = strings.Join(r.Hours, ", ")
	}
	description := r.Description
	if description == "" {
		description = "No description available"
	}

	fmt.Fprintf(b, "Name: %s\n", name)
	fmt.Fprintf(b, "Address: %s\n", orNA(r.Address))
	fmt.Fprintf(b, "Phone: %s\n", orNA(r.Phone))
	fmt.Fprintf(b, "Rating: %s (%d reviews)\n", rating, r.RatingCount)
	fmt.Fprintf(b, "Price Range: %s\n", orNA(r.PriceRange))
	fmt.Fprintf(b, "Hours: %s\n", hours)
	fmt.Fprintf(b, "Description: %s", description)

	reviews := r.Reviews
	if len(reviews) > maxReviewSnippets {
		reviews = reviews[:maxReviewSnippets]
	}
	for _, review := range reviews {
		fmt.Fprintf(b, "\nReview: %s", review)
	}
}

// FormatRecords 将结果序列渲染为文本，块之间以空行分隔，保持输入顺序
func FormatRecords(records []Record) string {
	if len(records) == 0 {
		return NoResultsText
	}
	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteString("\n\n")
		}
		r.appendTo(&b)
	}
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
