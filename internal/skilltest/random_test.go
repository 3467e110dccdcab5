package skilltest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededSource(t *testing.T) {
	t.Run("same seed yields the same sequence", func(t *testing.T) {
		a := NewSeededSource(42)
		b := NewSeededSource(42)
		for i := 0; i < 100; i++ {
			assert.Equal(t, a.Next(1, 100), b.Next(1, 100))
		}
	})

	t.Run("values stay within the closed range", func(t *testing.T) {
		src := NewSeededSource(7)
		for i := 0; i < 1000; i++ {
			v := src.Next(1, 100)
			require.GreaterOrEqual(t, v, 1)
			require.LessOrEqual(t, v, 100)
		}
	})

	t.Run("degenerate range returns the single value", func(t *testing.T) {
		src := NewSeededSource(7)
		for i := 0; i < 10; i++ {
			assert.Equal(t, 5, src.Next(5, 5))
		}
	})

	t.Run("concurrent draws do not race", func(t *testing.T) {
		src := NewSeededSource(7)
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					v := src.Next(1, 100)
					assert.GreaterOrEqual(t, v, 1)
					assert.LessOrEqual(t, v, 100)
				}
			}()
		}
		wg.Wait()
	})
}

func TestFixedSource(t *testing.T) {
	t.Run("replays values in order and cycles", func(t *testing.T) {
		src := NewFixedSource(45, 1, 100)
		got := []int{
			src.Next(1, 100), src.Next(1, 100), src.Next(1, 100),
			src.Next(1, 100),
		}
		assert.Equal(t, []int{45, 1, 100, 45}, got)
	})

	t.Run("requires at least one value", func(t *testing.T) {
		assert.Panics(t, func() { NewFixedSource() })
	})
}
