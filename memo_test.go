package fundtrack

import (
	"errors"
	"sync"
	"testing"
)

func TestMemoTable(t *testing.T) {
	memo := NewMemo()
	builds := 0
	build := func() (*Table, error) {
		builds++
		return Normalize([]HoldingRecord{holding("Q1 2023", "AAA", 5.0)}), nil
	}

	first, err := memo.Table("fund-1", build)
	if err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	second, err := memo.Table("fund-1", build)
	if err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	if builds != 1 {
		t.Errorf("build ran %d times, want 1", builds)
	}
	if first != second {
		t.Error("Table() returned different tables for the same key")
	}

	memo.Forget("fund-1")
	if _, err := memo.Table("fund-1", build); err != nil {
		t.Fatalf("Table() after Forget() error = %v", err)
	}
	if builds != 2 {
		t.Errorf("build ran %d times after Forget, want 2", builds)
	}
}

func TestMemoError(t *testing.T) {
	memo := NewMemo()
	boom := errors.New("boom")
	fails := 0

	for range 2 {
		_, err := memo.Table("fund-1", func() (*Table, error) {
			fails++
			return nil, boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("Table() error = %v, want boom", err)
		}
	}
	// a failed build is not cached
	if fails != 2 {
		t.Errorf("build ran %d times, want 2", fails)
	}
}

func TestMemoConcurrent(t *testing.T) {
	memo := NewMemo()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := memo.Table("fund-1", func() (*Table, error) {
				return Normalize(nil), nil
			})
			if err != nil {
				t.Errorf("goroutine %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()
}
