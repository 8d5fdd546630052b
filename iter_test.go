package staticvec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIterationReproducesSource(t *testing.T) {
	src := []int{4, 8, 15, 16, 23, 42}
	v, err := FromSlice(8, src)
	if err != nil {
		t.Fatal(err)
	}

	var got []int
	for x := range v.Values() {
		got = append(got, x)
	}
	if diff := cmp.Diff(src, got); diff != "" {
		t.Errorf("iteration mismatch (-want +got):\n%s", diff)
	}
}

func TestAllYieldsIndexOrder(t *testing.T) {
	v, _ := Of(4, "a", "b", "c")
	want := map[int]string{0: "a", 1: "b", 2: "c"}
	got := map[int]string{}
	prev := -1
	for i, s := range v.All() {
		if i != prev+1 {
			t.Errorf("expected ascending indices, got %d after %d", i, prev)
		}
		prev = i
		got[i] = s
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("All mismatch (-want +got):\n%s", diff)
	}
}

func TestBackwardYieldsDescendingOrder(t *testing.T) {
	v, _ := Of(4, 1, 2, 3)
	var idx, vals []int
	for i, x := range v.Backward() {
		idx = append(idx, i)
		vals = append(vals, x)
	}
	if diff := cmp.Diff([]int{2, 1, 0}, idx); diff != "" {
		t.Errorf("index order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 2, 1}, vals); diff != "" {
		t.Errorf("value order mismatch (-want +got):\n%s", diff)
	}
}

func TestIterationRestartable(t *testing.T) {
	v, _ := Of(4, 1, 2, 3)
	collect := func() []int {
		var out []int
		for x := range v.Values() {
			out = append(out, x)
		}
		return out
	}
	if diff := cmp.Diff(collect(), collect()); diff != "" {
		t.Errorf("fresh iterations must yield the same sequence:\n%s", diff)
	}
}

func TestIterationEarlyBreak(t *testing.T) {
	v, _ := Of(4, 1, 2, 3)
	n := 0
	for range v.Values() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("expected exactly one element before break, got %d", n)
	}
}

func TestIterationEmpty(t *testing.T) {
	v := New[int](4)
	for range v.Values() {
		t.Fatal("empty vector must yield nothing")
	}
	for range v.Backward() {
		t.Fatal("empty vector must yield nothing in reverse")
	}
}
