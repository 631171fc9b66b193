package utils

import "testing"

func TestPaginateMiddlePage(t *testing.T) {
	// page=2, limit=5, total=12: offset 5, 5 rows returned, 10 < 12.
	out := Paginate([]int{6, 7, 8, 9, 10}, 2, 5, 12)

	if !out.Meta.HasNext {
		t.Fatalf("hasNext = false, want true")
	}
	if !out.Meta.HasPrev {
		t.Fatalf("hasPrev = false, want true")
	}
	if out.Meta.Page != 2 || out.Meta.Limit != 5 || out.Meta.Total != 12 {
		t.Fatalf("meta = %+v", out.Meta)
	}
}

func TestPaginateLastPage(t *testing.T) {
	out := Paginate([]int{11, 12}, 3, 5, 12)
	if out.Meta.HasNext {
		t.Fatalf("hasNext = true on last page")
	}
	if !out.Meta.HasPrev {
		t.Fatalf("hasPrev = false, want true")
	}
}

func TestPaginateFirstAndOnlyPage(t *testing.T) {
	out := Paginate([]string{"a"}, 1, 5, 1)
	if out.Meta.HasNext || out.Meta.HasPrev {
		t.Fatalf("meta = %+v, want no next/prev", out.Meta)
	}
}

func TestPaginateNilDataStaysEncodable(t *testing.T) {
	out := Paginate[int](nil, 1, 5, 0)
	if out.Data == nil {
		t.Fatalf("data should be an empty slice, not nil")
	}
	if out.Meta.HasNext {
		t.Fatalf("hasNext = true with zero total")
	}
}
