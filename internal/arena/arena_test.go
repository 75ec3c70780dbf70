package arena

import (
	"errors"
	"math"
	"testing"
)

type pair struct {
	a, b int
}

func TestNewRejectsBadArguments(t *testing.T) {
	if _, err := New[int](0); !errors.Is(err, ErrZeroCapacity) {
		t.Fatalf("New(0): expected ErrZeroCapacity, got %v", err)
	}
	if _, err := New[int](-3); !errors.Is(err, ErrZeroCapacity) {
		t.Fatalf("New(-3): expected ErrZeroCapacity, got %v", err)
	}
	if _, err := New[struct{}](4); !errors.Is(err, ErrZeroElement) {
		t.Fatalf("New[struct{}]: expected ErrZeroElement, got %v", err)
	}
	if _, err := New[[1 << 20]byte](math.MaxInt/(1<<20) + 1); !errors.Is(err, ErrOverflow) {
		t.Fatalf("huge list: expected ErrOverflow, got %v", err)
	}
}

func TestNewStartsEmpty(t *testing.T) {
	l, err := New[pair](3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !l.IsValid() {
		t.Fatal("fresh list must be valid")
	}
	if l.Len() != 0 || l.Cap() != 3 {
		t.Fatalf("len=%d cap=%d, want 0/3", l.Len(), l.Cap())
	}
	if _, ok := l.Front(); ok {
		t.Fatal("Front on empty list must be absent")
	}
	if _, ok := l.Back(); ok {
		t.Fatal("Back on empty list must be absent")
	}
}

func TestPushGrowsByDoubling(t *testing.T) {
	l, err := New[pair](2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := []Result{ResultOK, ResultOK, ResultReallocated, ResultOK, ResultReallocated}
	for i, w := range want {
		prevCap := l.Cap()
		got := l.Push(pair{a: i, b: i * i})
		if got != w {
			t.Fatalf("push #%d: got %v, want %v", i, got, w)
		}
		if got == ResultReallocated && l.Cap() < prevCap*GrowthFactor {
			t.Fatalf("push #%d: capacity %d did not double from %d", i, l.Cap(), prevCap)
		}
	}
	if l.Cap() != 8 {
		t.Fatalf("cap = %d, want 8", l.Cap())
	}

	for i := range want {
		v, ok := l.Get(i)
		if !ok || v.a != i || v.b != i*i {
			t.Fatalf("Get(%d) = %+v, %v after growth", i, v, ok)
		}
	}
	if v, _ := l.Front(); v.a != 0 {
		t.Fatalf("Front = %+v", v)
	}
	if v, _ := l.Back(); v.a != 4 {
		t.Fatalf("Back = %+v", v)
	}
}

func TestGetOutOfRange(t *testing.T) {
	l, _ := New[int](1)
	l.Push(7)
	for _, idx := range []int{-1, 1, 100} {
		if _, ok := l.Get(idx); ok {
			t.Errorf("Get(%d) must be absent", idx)
		}
	}
}

func TestGetReturnsCopy(t *testing.T) {
	l, _ := New[pair](1)
	l.Push(pair{a: 1})
	v, _ := l.Get(0)
	v.a = 42
	again, _ := l.Get(0)
	if again.a != 1 {
		t.Fatalf("mutating a returned value changed the list: %+v", again)
	}
}

func TestAllVisitsInOrder(t *testing.T) {
	l, _ := New[int](1)
	for i := range 5 {
		l.Push(i * 10)
	}
	var seen []int
	for i, v := range l.All() {
		if v != i*10 {
			t.Fatalf("index %d holds %d", i, v)
		}
		seen = append(seen, v)
		if i == 2 {
			break
		}
	}
	if len(seen) != 3 {
		t.Fatalf("early break visited %d elements", len(seen))
	}
}

func TestInvalidListIsInert(t *testing.T) {
	var nilList *List[int]
	destroyed, _ := New[int](4)
	destroyed.Push(1)
	if r := destroyed.Destroy(); r != ResultOK {
		t.Fatalf("first Destroy = %v", r)
	}

	cases := map[string]*List[int]{
		"nil":       nilList,
		"destroyed": destroyed,
	}
	for name, l := range cases {
		t.Run(name, func(t *testing.T) {
			if l.IsValid() {
				t.Fatal("list must be invalid")
			}
			if r := l.Push(3); r != ResultNullPointer {
				t.Errorf("Push = %v", r)
			}
			if _, ok := l.Get(0); ok {
				t.Error("Get must be absent")
			}
			if _, ok := l.Front(); ok {
				t.Error("Front must be absent")
			}
			if _, ok := l.Back(); ok {
				t.Error("Back must be absent")
			}
			if r := l.Destroy(); r != ResultNullPointer {
				t.Errorf("Destroy = %v", r)
			}
			if l.Len() != 0 || l.Cap() != 0 {
				t.Errorf("len=%d cap=%d", l.Len(), l.Cap())
			}
			for range l.All() {
				t.Error("All must not yield")
			}
		})
	}
}

func TestMulOverflows(t *testing.T) {
	tests := []struct {
		a, b uintptr
		want bool
	}{
		{0, 8, false},
		{8, 0, false},
		{1 << 10, 1 << 10, false},
		{uintptr(math.MaxInt), 1, false},
		{uintptr(math.MaxInt), 2, true},
		{uintptr(math.MaxInt)/4 + 1, 4, true},
	}
	for _, tt := range tests {
		if got := mulOverflows(tt.a, tt.b); got != tt.want {
			t.Errorf("mulOverflows(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAllocateRecoversFromPanic(t *testing.T) {
	_, err := allocate[int](0, -1)
	if !errors.Is(err, ErrAlloc) {
		t.Fatalf("expected ErrAlloc, got %v", err)
	}
}

func TestResultSucceeded(t *testing.T) {
	for _, r := range []Result{ResultOK, ResultReallocated} {
		if !r.Succeeded() {
			t.Errorf("%v must succeed", r)
		}
	}
	for _, r := range []Result{ResultNullPointer, ResultOverflow, ResultErr} {
		if r.Succeeded() {
			t.Errorf("%v must fail", r)
		}
	}
}
