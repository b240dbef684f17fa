package repository

// NormalizePagination 归一化分页参数
func NormalizePagination(page, pageSize, defaultPageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

// TotalPages 计算总页数，没有数据时也至少 1 页
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// PageBounds 计算第 page 页在 [0,total) 中的切片区间，越界时返回空区间
func PageBounds(total, page, pageSize int) (int, int) {
	if total <= 0 || pageSize <= 0 {
		return 0, 0
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= total {
		return total, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return start, end
}
