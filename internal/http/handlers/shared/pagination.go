package shared

// MaxPageSize 列表接口单页上限
const MaxPageSize = 100

// NormalizePagination 归一化分页参数，pageSize 非法时回落到 fallback
func NormalizePagination(page, pageSize, fallback int) (int, int) {
	if page < 1 {
		page = 1
	}
	if fallback <= 0 || fallback > MaxPageSize {
		fallback = 20
	}
	switch {
	case pageSize <= 0:
		pageSize = fallback
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	return page, pageSize
}
