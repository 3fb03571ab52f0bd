package trace

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_EdgesAreSortedAndDeduplicated(t *testing.T) {
	recorder := NewRecorder()

	require.NoError(t, recorder.RecordEdge("/app/main.js", "/app/b.js"))
	require.NoError(t, recorder.RecordEdge("/app/main.js", "/app/a.js"))
	require.NoError(t, recorder.RecordEdge("/app/main.js", "/app/a.js"))
	require.NoError(t, recorder.RecordEdge("/app/a.js", "/app/b.js"))

	edges, err := recorder.Edges()

	require.NoError(t, err)
	assert.Equal(t, []Edge{
		{From: "/app/a.js", To: "/app/b.js"},
		{From: "/app/main.js", To: "/app/a.js"},
		{From: "/app/main.js", To: "/app/b.js"},
	}, edges)
}

func TestRecorder_DropsSelfEdgesAndEmptyEndpoints(t *testing.T) {
	recorder := NewRecorder()

	require.NoError(t, recorder.RecordEdge("/app/main.js", "/app/main.js"))
	require.NoError(t, recorder.RecordEdge("", "/app/a.js"))
	require.NoError(t, recorder.RecordEdge("/app/a.js", ""))

	edges, err := recorder.Edges()

	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestRecorder_ConcurrentRecording(t *testing.T) {
	recorder := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			from := fmt.Sprintf("/app/importer-%d.js", i)
			for j := 0; j < 5; j++ {
				_ = recorder.RecordEdge(from, fmt.Sprintf("/app/dep-%d.js", j))
			}
		}(i)
	}
	wg.Wait()

	edges, err := recorder.Edges()

	require.NoError(t, err)
	assert.Len(t, edges, 100)
}
