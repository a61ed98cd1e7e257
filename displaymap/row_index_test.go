package displaymap

import "testing"

func TestRowIndex_PrefixAndFind(t *testing.T) {
	counts := []int{1, 3, 1, 2, 1}
	var x rowIndex
	x.build(counts)

	if got, want := x.total(), 8; got != want {
		t.Fatalf("total: got %d, want %d", got, want)
	}

	sum := 0
	for row, c := range counts {
		if got := x.prefix(row); got != sum {
			t.Fatalf("prefix(%d): got %d, want %d", row, got, sum)
		}
		for w := sum; w < sum+c; w++ {
			if got := x.find(w); got != row {
				t.Fatalf("find(%d): got %d, want %d", w, got, row)
			}
		}
		sum += c
	}
}

func TestRowIndex_SetUpdatesPrefixes(t *testing.T) {
	var x rowIndex
	x.build([]int{1, 1, 1, 1})
	x.set(1, 4)

	if got, want := x.total(), 7; got != want {
		t.Fatalf("total: got %d, want %d", got, want)
	}
	if got, want := x.prefix(2), 5; got != want {
		t.Fatalf("prefix(2): got %d, want %d", got, want)
	}
	if got, want := x.find(4), 1; got != want {
		t.Fatalf("find(4): got %d, want %d", got, want)
	}
	if got, want := x.find(5), 2; got != want {
		t.Fatalf("find(5): got %d, want %d", got, want)
	}
}
