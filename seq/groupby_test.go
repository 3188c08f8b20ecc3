package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupBy(t *testing.T) {
	parity := func(n int) int { return n % 2 }

	assert.Empty(t, GroupBy([]int{}, parity))

	assert.ElementsMatch(t,
		[][]int{{2, 4}, {3, 5, 1}},
		GroupBy([]int{3, 2, 5, 4, 1}, parity),
	)
}

func TestGroupByStable(t *testing.T) {
	parity := func(n int) int { return n % 2 }

	tests := []struct {
		name string
		data []int
		want [][]int
	}{
		{
			name: "empty",
			data: []int{},
			want: nil,
		},
		{
			name: "first seen group comes first",
			data: []int{3, 2, 5, 4, 1},
			want: [][]int{{3, 5, 1}, {2, 4}},
		},
		{
			name: "even first",
			data: []int{8, 1, 6},
			want: [][]int{{8, 6}, {1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupByStable(tt.data, parity))
		})
	}
}

func TestGroupAndOrderBy(t *testing.T) {
	words := []string{"go", "rust", "c", "zig", "java", "d"}

	assert.Equal(t,
		[][]string{{"c", "d"}, {"go"}, {"zig"}, {"rust", "java"}},
		GroupAndOrderBy(words, func(s string) int { return len(s) }),
	)
}
