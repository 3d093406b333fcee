package progress

import (
	"iter"
	"testing"
)

func seqOf(values ...int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

func TestWrap(t *testing.T) {
	clearProgressEnv(t)
	w := &captureWriter{}
	bar, err := New(testConfig(w, 3))
	if err != nil {
		t.Fatal(err)
	}

	var got []int
	for v := range Wrap(bar, seqOf(10, 20, 30)) {
		got = append(got, v)
	}

	if len(got) != 3 || got[0] != 10 || got[2] != 30 {
		t.Errorf("iterated %v", got)
	}
	if !bar.Finished() {
		t.Error("bar not finished after exhausting the sequence")
	}
	if bar.Value() != 3 {
		t.Errorf("Value() = %d, want 3", bar.Value())
	}
}

func TestWrapEarlyBreak(t *testing.T) {
	clearProgressEnv(t)
	w := &captureWriter{}
	bar, err := New(testConfig(w, 3))
	if err != nil {
		t.Fatal(err)
	}

	for v := range Wrap(bar, seqOf(10, 20, 30)) {
		if v == 20 {
			break
		}
	}

	if !bar.Finished() {
		t.Error("bar not finished after break")
	}
	// A dirty finish keeps the partial value instead of jumping to 100%
	if bar.Value() != 1 {
		t.Errorf("Value() = %d, want 1", bar.Value())
	}
}

func TestWrapEmpty(t *testing.T) {
	clearProgressEnv(t)
	w := &captureWriter{}
	bar, err := New(testConfig(w, UnknownLength))
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	for range Wrap(bar, seqOf()) {
		count++
	}

	if count != 0 {
		t.Errorf("empty sequence yielded %d values", count)
	}
	if !bar.Started() || !bar.Finished() {
		t.Error("empty sequence did not run the bar lifecycle")
	}
	if bar.Value() != 0 {
		t.Errorf("Value() = %d, want 0", bar.Value())
	}
}

func TestSlice(t *testing.T) {
	clearProgressEnv(t)
	w := &captureWriter{}
	bar, err := New(testConfig(w, UnknownLength))
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for v := range Slice(bar, []string{"a", "b", "c"}) {
		got = append(got, v)
	}

	maxValue, known := bar.MaxValue()
	if !known || maxValue != 3 {
		t.Errorf("MaxValue() = %d, %v, want 3, true", maxValue, known)
	}
	if len(got) != 3 {
		t.Errorf("iterated %v", got)
	}
	if !bar.Finished() || bar.Value() != 3 {
		t.Errorf("finished=%v value=%d", bar.Finished(), bar.Value())
	}
}
