package job

import (
	"fmt"
	"testing"
)

func boardFixture() []Job {
	// Newest first, as the repository returns them.
	return []Job{
		{ID: "3", Title: "React Dev", Location: "Haifa"},
		{ID: "2", Title: "Backend Intern", Location: "Tel Aviv"},
		{ID: "1", Title: "React Intern", Location: "Jerusalem"},
		{ID: "0", Title: "Remote QA"},
	}
}

func ids(jobs []Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func TestQuery_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		in    Query
		page  int
		limit int
	}{
		{"defaults", Query{}, DefaultPage, DefaultLimit},
		{"explicit values kept", Query{Page: 3, Limit: 25}, 3, 25},
		{"negative page", Query{Page: -2, Limit: 5}, DefaultPage, 5},
		{"limit above max", Query{Limit: 1000}, DefaultPage, MaxLimit},
		{"limit at max", Query{Limit: MaxLimit}, DefaultPage, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.Page != tt.page || got.Limit != tt.limit {
				t.Errorf("Normalize() = page %d limit %d, want page %d limit %d", got.Page, got.Limit, tt.page, tt.limit)
			}
		})
	}
}

func TestFilterAndPaginate_Filters(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"no filters", Query{}, []string{"3", "2", "1", "0"}},
		{"title case-insensitive", Query{Title: "react"}, []string{"3", "1"}},
		{"title upper case", Query{Title: "INTERN"}, []string{"2", "1"}},
		{"location", Query{Location: "jerusalem"}, []string{"1"}},
		{"location substring", Query{Location: "a"}, []string{"3", "2", "1"}},
		{"title and location", Query{Title: "intern", Location: "tel"}, []string{"2"}},
		{"no match", Query{Title: "golang"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := FilterAndPaginate(boardFixture(), tt.query)
			got := ids(page.Items)
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("items = %v, want %v", got, tt.want)
			}
			if page.Total != len(tt.want) {
				t.Errorf("total = %d, want %d", page.Total, len(tt.want))
			}
		})
	}
}

func TestFilterAndPaginate_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		query      Query
		want       []string
		totalPages int
	}{
		{"first page", Query{Page: 1, Limit: 3}, []string{"3", "2", "1"}, 2},
		{"last partial page", Query{Page: 2, Limit: 3}, []string{"0"}, 2},
		{"page beyond end", Query{Page: 5, Limit: 3}, []string{}, 2},
		{"huge page number", Query{Page: int(^uint(0) >> 1), Limit: 100}, []string{}, 1},
		{"limit one page two", Query{Page: 2, Limit: 1}, []string{"2"}, 4},
		{"exact multiple", Query{Page: 2, Limit: 2}, []string{"1", "0"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := FilterAndPaginate(boardFixture(), tt.query)
			if fmt.Sprint(ids(page.Items)) != fmt.Sprint(tt.want) {
				t.Errorf("items = %v, want %v", ids(page.Items), tt.want)
			}
			if page.TotalPages != tt.totalPages {
				t.Errorf("totalPages = %d, want %d", page.TotalPages, tt.totalPages)
			}
			if page.Page != tt.query.Page {
				t.Errorf("page = %d, want %d", page.Page, tt.query.Page)
			}
			if len(page.Items) > page.Limit {
				t.Errorf("items length %d exceeds limit %d", len(page.Items), page.Limit)
			}
		})
	}
}

func TestFilterAndPaginate_TotalPagesIsCeiling(t *testing.T) {
	for total := 0; total <= 25; total++ {
		jobs := make([]Job, total)
		for limit := 1; limit <= 12; limit++ {
			page := FilterAndPaginate(jobs, Query{Limit: limit})
			want := total / limit
			if total%limit != 0 {
				want++
			}
			if page.TotalPages != want {
				t.Fatalf("total=%d limit=%d: totalPages = %d, want %d", total, limit, page.TotalPages, want)
			}
		}
	}
}

func TestFilterAndPaginate_Empty(t *testing.T) {
	page := FilterAndPaginate(nil, Query{})

	if page.Total != 0 || page.TotalPages != 0 {
		t.Errorf("expected zero totals, got total=%d totalPages=%d", page.Total, page.TotalPages)
	}
	if page.Items == nil {
		t.Error("expected non-nil empty items")
	}
	if page.Page != DefaultPage || page.Limit != DefaultLimit {
		t.Errorf("expected defaults, got page=%d limit=%d", page.Page, page.Limit)
	}
}

func TestFilterAndPaginate_DoesNotMutateInput(t *testing.T) {
	jobs := boardFixture()
	_ = FilterAndPaginate(jobs, Query{Title: "react", Limit: 1})

	if fmt.Sprint(ids(jobs)) != fmt.Sprint([]string{"3", "2", "1", "0"}) {
		t.Errorf("input reordered: %v", ids(jobs))
	}
}
