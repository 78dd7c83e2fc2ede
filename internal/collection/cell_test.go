package collection

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell_Swap(t *testing.T) {
	cell := NewCell("http://a")
	assert.Equal(t, "http://a", cell.Get())
	assert.EqualValues(t, 0, cell.Load().Version)

	prev := cell.Swap("http://b")
	assert.Equal(t, "http://a", prev.Value)
	assert.Equal(t, "http://b", cell.Get())
	assert.EqualValues(t, 1, cell.Load().Version)

	var zero Cell[string]
	assert.Equal(t, "", zero.Get())
	prev = zero.Swap("x")
	assert.Equal(t, "", prev.Value)
	assert.EqualValues(t, 1, zero.Load().Version)
}

func TestCell_ConcurrentReadWhileWrite(t *testing.T) {
	values := []string{"http://a", "http://b", "http://c"}
	cell := NewCell(values[0])
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if i%2 == 0 {
					cell.Swap(values[j%len(values)])
					continue
				}
				snapshot := cell.Load()
				assert.Contains(t, values, snapshot.Value)
			}
		}(i)
	}
	wg.Wait()
	assert.EqualValues(t, 800, cell.Load().Version)
}
