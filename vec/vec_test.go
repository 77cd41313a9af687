package vec

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewIsEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arcade.vec")
	defer teardown()

	v := New[int](4)
	if v.Len() != 0 || v.Cap() != 4 {
		t.Fatalf("unexpected state len=%d cap=%d", v.Len(), v.Cap())
	}
	if v.ElementSize() != 8 && v.ElementSize() != 4 {
		t.Fatalf("unexpected element size %d", v.ElementSize())
	}
	var zero Vec[string]
	zero.Append("x")
	if zero.Len() != 1 || zero.Cap() != 1 {
		t.Fatalf("zero Vec must be usable, len=%d cap=%d", zero.Len(), zero.Cap())
	}
}

func TestAppendDoublesCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arcade.vec")
	defer teardown()

	v := New[int](2)
	caps := []int{}
	for i := range 9 {
		v.Append(i)
		caps = append(caps, v.Cap())
	}
	want := []int{2, 2, 4, 4, 8, 8, 8, 8, 16}
	if !slices.Equal(caps, want) {
		t.Fatalf("capacity progression = %v, want %v", caps, want)
	}
	if !slices.Equal(v.Slice(), []int{0, 1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Fatalf("unexpected content %v", v.Slice())
	}
}

func TestAppendFromZeroCapacity(t *testing.T) {
	v := New[byte](0)
	v.Append('a')
	v.Append('b')
	v.Append('c')
	if v.Cap() != 4 || string(v.Slice()) != "abc" {
		t.Fatalf("unexpected state cap=%d content=%q", v.Cap(), v.Slice())
	}
}

func TestPointerElementsAreNotDereferenced(t *testing.T) {
	type particle struct{ life float32 }
	v := New[*particle](1)
	p := &particle{life: 1}
	v.Append(p)
	v.Append(nil)
	got, err := v.At(0)
	if err != nil {
		t.Fatal(err)
	}
	if got != p {
		t.Fatalf("expected identical pointer")
	}
	got.life = 0.5
	if p.life != 0.5 {
		t.Fatalf("pointee not shared")
	}
	if v.ElementSize() != 8 && v.ElementSize() != 4 {
		t.Fatalf("pointer slot width = %d", v.ElementSize())
	}
}

func TestInsertRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arcade.vec")
	defer teardown()

	v := New[int](1)
	v.Append(1)
	v.Append(5)
	if err := v.InsertRange(1, 2, 3, 4); err != nil {
		t.Fatal(err)
	}
	if err := v.InsertRange(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := v.InsertRange(v.Len(), 6, 7); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(v.Slice(), []int{0, 1, 2, 3, 4, 5, 6, 7}) {
		t.Fatalf("unexpected content %v", v.Slice())
	}
	if v.Cap() != 8 {
		t.Fatalf("expected capacity to grow by doubling to 8, is %d", v.Cap())
	}
}

func TestInsertRangeOutOfBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arcade.vec")
	defer teardown()

	v := New[int](2)
	v.Append(1)
	err := v.InsertRange(2, 9)
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if err = v.InsertRange(-1, 9); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds for negative position, got %v", err)
	}
	if v.Len() != 1 || v.Cap() != 2 {
		t.Fatalf("sequence mutated on error: len=%d cap=%d", v.Len(), v.Cap())
	}
}

func TestInsertRangeGrowsByMoreThanOneDoubling(t *testing.T) {
	v := New[int](1)
	v.Append(0)
	if err := v.InsertRange(1, 1, 2, 3, 4, 5, 6, 7, 8); err != nil {
		t.Fatal(err)
	}
	if v.Cap() != 16 || v.Len() != 9 {
		t.Fatalf("unexpected state len=%d cap=%d", v.Len(), v.Cap())
	}
}

func TestEraseRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arcade.vec")
	defer teardown()

	v := New[int](8)
	for i := range 6 {
		v.Append(i)
	}
	if err := v.EraseRange(1, 3); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(v.Slice(), []int{0, 3, 4, 5}) {
		t.Fatalf("unexpected content %v", v.Slice())
	}
	if err := v.EraseRange(v.Len(), v.Len()); err != nil {
		t.Fatalf("empty range at end must be accepted, got %v", err)
	}
	if err := v.EraseRange(0, v.Len()); err != nil {
		t.Fatal(err)
	}
	if v.Len() != 0 || v.Cap() != 8 {
		t.Fatalf("unexpected state len=%d cap=%d", v.Len(), v.Cap())
	}
}

func TestEraseRangeInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arcade.vec")
	defer teardown()

	v := New[int](4)
	v.Append(1)
	v.Append(2)
	for _, r := range [][2]int{{3, 3}, {0, 3}, {2, 1}, {-1, 1}} {
		if err := v.EraseRange(r[0], r[1]); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("range %v: expected ErrInvalidRange, got %v", r, err)
		}
	}
	if !slices.Equal(v.Slice(), []int{1, 2}) {
		t.Fatalf("sequence mutated on error: %v", v.Slice())
	}
}

func TestEraseNullsVacatedPointerSlots(t *testing.T) {
	v := New[*int](4)
	for i := range 4 {
		v.Append(&i)
	}
	if err := v.EraseRange(1, 3); err != nil {
		t.Fatal(err)
	}
	if v.buf[2] != nil || v.buf[3] != nil {
		t.Fatalf("abandoned slots still hold pointers")
	}
}

func TestCompactThenErase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arcade.vec")
	defer teardown()

	type item struct {
		id        int
		removable bool
	}
	v := New[*item](2)
	for i := range 5 {
		v.Append(&item{id: i, removable: i == 1 || i == 3})
	}
	n := v.Compact(func(it *item) bool { return it.removable })
	if n != 3 {
		t.Fatalf("compact returned %d, want 3", n)
	}
	if v.Len() != 5 {
		t.Fatalf("compact must not change size, is %d", v.Len())
	}
	if err := v.EraseRange(n, v.Len()); err != nil {
		t.Fatal(err)
	}
	var ids []int
	for it := range v.Values() {
		ids = append(ids, it.id)
	}
	if !slices.Equal(ids, []int{0, 2, 4}) {
		t.Fatalf("survivors = %v, want [0 2 4]", ids)
	}
}

func TestCompactEraseRoundTripProperty(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for round := range 200 {
		size := rnd.Intn(64)
		v := New[int](1 + rnd.Intn(4))
		model := make([]int, 0, size)
		for range size {
			x := rnd.Intn(100)
			v.Append(x)
			model = append(model, x)
		}
		mod := 2 + rnd.Intn(5)
		pred := func(x int) bool { return x%mod == 0 }
		old := v.Len()
		n := v.Compact(pred)
		if err := v.EraseRange(n, old); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		want := slices.DeleteFunc(slices.Clone(model), pred)
		if !slices.Equal(v.Slice(), want) {
			t.Fatalf("round %d: got %v, want %v", round, v.Slice(), want)
		}
	}
}

func TestOrderPreservationProperty(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for round := range 100 {
		v := New[int](1)
		var model []int
		n, m := rnd.Intn(50), rnd.Intn(50)
		for i := range n {
			v.Append(i)
			model = append(model, i)
		}
		for j := range m {
			pos := rnd.Intn(len(model) + 1)
			if err := v.InsertRange(pos, 1000+j); err != nil {
				t.Fatalf("round %d: %v", round, err)
			}
			model = slices.Insert(model, pos, 1000+j)
		}
		if v.Len() != n+m {
			t.Fatalf("round %d: size %d, want %d", round, v.Len(), n+m)
		}
		if !slices.Equal(v.Slice(), model) {
			t.Fatalf("round %d: order mismatch", round)
		}
	}
}

func TestClearAndDestroy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arcade.vec")
	defer teardown()

	v := New[string](2)
	v.Append("a")
	v.Append("b")
	v.Append("c")
	var swept []string
	v.Clear(func(s string) { swept = append(swept, s) })
	if !slices.Equal(swept, []string{"a", "b", "c"}) {
		t.Fatalf("cleanup sweep = %v", swept)
	}
	if v.Len() != 0 || v.Cap() != 4 {
		t.Fatalf("clear must retain capacity: len=%d cap=%d", v.Len(), v.Cap())
	}
	v.Append("d")
	swept = nil
	v.Destroy(func(s string) { swept = append(swept, s) })
	if !slices.Equal(swept, []string{"d"}) {
		t.Fatalf("destroy sweep = %v", swept)
	}
	if v.Len() != 0 || v.Cap() != 0 {
		t.Fatalf("destroy must release buffer: len=%d cap=%d", v.Len(), v.Cap())
	}
	v.Clear(nil)
	v.Append("e")
	if v.Len() != 1 {
		t.Fatalf("destroyed sequence should be reusable")
	}
}

func TestAtAndSet(t *testing.T) {
	v := New[int](2)
	v.Append(1)
	if _, err := v.At(1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if err := v.Set(0, 7); err != nil {
		t.Fatal(err)
	}
	if x, _ := v.At(0); x != 7 {
		t.Fatalf("At(0) = %d, want 7", x)
	}
	if err := v.Set(3, 1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestIterators(t *testing.T) {
	v := New[int](4)
	for i := range 4 {
		v.Append(i * 10)
	}
	var fwd, bwd []int
	for i, x := range v.All() {
		if x != i*10 {
			t.Fatalf("All yielded (%d,%d)", i, x)
		}
		fwd = append(fwd, x)
	}
	for _, x := range v.Backward() {
		bwd = append(bwd, x)
	}
	slices.Reverse(bwd)
	if !slices.Equal(fwd, bwd) {
		t.Fatalf("backward %v is not reverse of forward %v", bwd, fwd)
	}
	var first []int
	for x := range v.Values() {
		first = append(first, x)
		if len(first) == 2 {
			break
		}
	}
	if !slices.Equal(first, []int{0, 10}) {
		t.Fatalf("early stop yielded %v", first)
	}
	var again []int
	for x := range v.Values() {
		again = append(again, x)
	}
	if len(again) != 4 {
		t.Fatalf("iterator not restartable")
	}
}

func TestInsertRangeFromOwnBuffer(t *testing.T) {
	for _, tc := range []struct {
		initial []int
		pos     int
		from    int
		want    []int
	}{
		{[]int{1, 2, 3}, 0, 1, []int{2, 3, 1, 2, 3}},
		{[]int{1, 2, 3, 4}, 1, 2, []int{1, 3, 4, 2, 3, 4}},
		{[]int{1, 2, 3}, 3, 0, []int{1, 2, 3, 1, 2, 3}},
	} {
		v := New[int](16) // no growth, src stays a view of the buffer
		for _, x := range tc.initial {
			v.Append(x)
		}
		if err := v.InsertRange(tc.pos, v.Slice()[tc.from:]...); err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(v.Slice(), tc.want) {
			t.Errorf("insert at %d from own buffer: got %v, want %v", tc.pos, v.Slice(), tc.want)
		}
	}
}
