package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasDuplicates(t *testing.T) {
	tests := []struct {
		name string
		s    []int
		want bool
	}{
		{"empty", nil, false},
		{"one", []int{1}, false},
		{"distinct", []int{1, 2, 3, 4}, false},
		{"adjacent", []int{1, 2, 2, 3}, true},
		{"apart", []int{7, 1, 2, 7}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasDuplicates(tt.s))
		})
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{
			name: "empty",
			want: []int{},
		},
		{
			name: "one side empty",
			a:    []int{1, 2},
			want: []int{},
		},
		{
			name: "overlap",
			a:    []int{1, 2, 3, 4},
			b:    []int{3, 4, 5, 6},
			want: []int{3, 4},
		},
		{
			name: "duplicates collapse",
			a:    []int{2, 2, 2, 9},
			b:    []int{9, 2, 9},
			want: []int{2, 9},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := Intersect(tt.a, tt.b)
			ba := Intersect(tt.b, tt.a)

			assert.Equal(t, tt.want, Sorted(ab))
			assert.True(t, ab.Equal(ba), "not commutative")
		})
	}
}

func TestUnique(t *testing.T) {
	in := []string{"b", "a", "b", "c", "a"}

	assert.Equal(t, []string{"b", "a", "c"}, Unique(in))
	assert.Equal(t, []string{"b", "a", "b", "c", "a"}, in)
	assert.Equal(t, []string{}, Unique([]string(nil)))
}
