package brave

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// 查询参数的校验边界（与Brave API文档一致）
const (
	maxQueryChars = 400
	maxQueryWords = 50

	minCount  = 1
	maxCount  = 20
	minOffset = 0
	maxOffset = 9

	defaultWebCount   = 10
	defaultLocalCount = 5
)

// SearchQuery 校验后的查询参数集
type SearchQuery struct {
	Query  string
	Count  int
	Offset int
}

// NormalizeWebQuery 校验并整形网页搜索参数。
// query为硬校验（非空、≤400字符、≤50个词），超限直接报错；
// count/offset为宽松处理，越界时钳制到合法区间而非报错。
// count传0表示未指定，取默认值10。
func NormalizeWebQuery(query string, count, offset int) (SearchQuery, error) {
	if err := validateQuery(query, true); err != nil {
		return SearchQuery{}, err
	}
	return SearchQuery{
		Query:  query,
		Count:  clampCount(count, defaultWebCount),
		Offset: clampOffset(offset),
	}, nil
}

// NormalizeLocalQuery 校验并整形本地搜索参数。
// 与网页搜索的差异：不限制词数（对齐上游行为），count默认5，无offset。
func NormalizeLocalQuery(query string, count int) (SearchQuery, error) {
	if err := validateQuery(query, false); err != nil {
		return SearchQuery{}, err
	}
	return SearchQuery{
		Query: query,
		Count: clampCount(count, defaultLocalCount),
	}, nil
}

func validateQuery(query string, enforceWordCap bool) error {
	if strings.TrimSpace(query) == "" {
		return &Error{Kind: ErrValidation, Message: "query must not be empty"}
	}
	if n := utf8.RuneCountInString(query); n > maxQueryChars {
		return &Error{
			Kind:    ErrValidation,
			Message: fmt.Sprintf("query exceeds %d characters (got %d)", maxQueryChars, n),
		}
	}
	if enforceWordCap {
		if n := len(strings.Fields(query)); n > maxQueryWords {
			return &Error{
				Kind:    ErrValidation,
				Message: fmt.Sprintf("query exceeds %d words (got %d)", maxQueryWords, n),
			}
		}
	}
	return nil
}

func clampCount(count, def int) int {
	if count == 0 {
		return def
	}
	if count < minCount {
		return minCount
	}
	if count > maxCount {
		return maxCount
	}
	return count
}

func clampOffset(offset int) int {
	if offset < minOffset {
		return minOffset
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}
