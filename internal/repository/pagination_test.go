package repository

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int
		pageSize int
		want     int
	}{
		{total: 0, pageSize: 10, want: 1},
		{total: 1, pageSize: 10, want: 1},
		{total: 10, pageSize: 10, want: 1},
		{total: 11, pageSize: 10, want: 2},
		{total: 23, pageSize: 10, want: 3},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.pageSize); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.pageSize, got, tc.want)
		}
	}
}

func TestPageBounds(t *testing.T) {
	start, end := PageBounds(23, 3, 10)
	if start != 20 || end != 23 {
		t.Fatalf("unexpected bounds for page 3: [%d,%d)", start, end)
	}
	start, end = PageBounds(23, 4, 10)
	if start != end {
		t.Fatalf("expected empty bounds past the last page, got [%d,%d)", start, end)
	}
	start, end = PageBounds(5, 0, 10)
	if start != 0 || end != 5 {
		t.Fatalf("expected page < 1 to act as page 1, got [%d,%d)", start, end)
	}
}

func TestNormalizePagination(t *testing.T) {
	page, size := NormalizePagination(0, 0, 10)
	if page != 1 || size != 10 {
		t.Fatalf("unexpected normalized pagination: page=%d size=%d", page, size)
	}
}
