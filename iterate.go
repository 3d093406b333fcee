package progress

import "iter"

// Wrap drives bar from iteration over seq: the bar starts when the first
// element is pulled, advances once per element and finishes when the
// sequence is exhausted. Breaking out of the loop early finishes the bar
// without forcing it to its maximum, so a partial run stays visible as
// partial. An empty sequence still produces a started and finished bar.
func Wrap[T any](bar *ProgressBar, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if err := bar.Start(); err != nil {
			return
		}
		completed := false
		defer func() {
			if completed {
				_ = bar.Finish()
			} else {
				_ = bar.FinishDirty()
			}
		}()

		count := bar.Value()
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			_ = bar.Update(count)
		}
		completed = true
	}
}

// Slice is Wrap over a slice, with the bar's maximum preset to cover its
// length.
func Slice[T any](bar *ProgressBar, items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if err := bar.StartMax(bar.minValue + int64(len(items))); err != nil {
			return
		}
		completed := false
		defer func() {
			if completed {
				_ = bar.Finish()
			} else {
				_ = bar.FinishDirty()
			}
		}()

		count := bar.Value()
		for _, v := range items {
			if !yield(v) {
				return
			}
			count++
			_ = bar.Update(count)
		}
		completed = true
	}
}
