package MergeSort2

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"

	"GoMergeSort/MergeSort"
)

type myStruct struct {
	n    int
	name string
}

func (s myStruct) CompareTo(o myStruct) int {
	return s.n - o.n
}

func makeRandomStructs(n int) []myStruct {
	r := rand.New(rand.NewSource(42))
	structs := make([]myStruct, n)
	for i := 0; i < n; i++ {
		structs[i] = myStruct{n: r.Intn(n)}
	}
	return structs
}

func TestParallelSortFunc(t *testing.T) {
	in := []myStruct{{5, "e"}, {3, "c"}, {8, "h"}, {1, "a"}, {9, "i"}, {2, "b"}}
	want := []myStruct{{1, "a"}, {2, "b"}, {3, "c"}, {5, "e"}, {8, "h"}, {9, "i"}}

	for _, k := range []int{1, 2, 10} {
		got := slices.Clone(in)
		if err := ParallelSortFunc(got, k); err != nil {
			t.Fatalf("K=%d: %v", k, err)
		}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(myStruct{})); diff != "" {
			t.Errorf("K=%d: unexpected order (-want +got):\n%s", k, diff)
		}
	}
}

func TestParallelSortFuncMatchesSequential(t *testing.T) {
	src := makeRandomStructs(50000)
	seq := slices.Clone(src)
	par := slices.Clone(src)

	if err := ParallelSortFunc(seq, 1); err != nil {
		t.Fatal(err)
	}
	if err := ParallelSortFunc(par, 16); err != nil {
		t.Fatal(err)
	}
	if !IsSortedFunc(par) {
		t.Fatal("Not sorted")
	}
	if diff := cmp.Diff(seq, par, cmp.AllowUnexported(myStruct{})); diff != "" {
		t.Errorf("K=16 differs from K=1 (-seq +par):\n%s", diff)
	}
}

func TestParallelSortFuncInvalidK(t *testing.T) {
	err := ParallelSortFunc([]myStruct{{2, ""}, {1, ""}}, 0)
	if err == nil {
		t.Fatal("expected an error for K=0")
	}
	if !errors.Is(err, MergeSort.ErrInvalidConcurrency) {
		t.Errorf("got %v, want ErrInvalidConcurrency", err)
	}
}

func TestIsSortedFunc(t *testing.T) {
	if !IsSortedFunc([]myStruct{}) {
		t.Error("empty slice should be sorted")
	}
	if IsSortedFunc([]myStruct{{2, ""}, {1, ""}}) {
		t.Error("descending slice reported sorted")
	}
}
