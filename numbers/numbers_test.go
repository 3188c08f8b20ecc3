package numbers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEven(t *testing.T) {
	assert.True(t, IsEven(4))
	assert.False(t, IsEven(7))
	assert.True(t, IsEven(0))
	assert.True(t, IsEven(-2))
	assert.False(t, IsEven(int8(-3)))
}

func TestLarger(t *testing.T) {
	assert.Equal(t, 10, Larger(5, 10))
	assert.Equal(t, 10, Larger(10, 5))
	assert.Equal(t, -3, Larger(-3, -8))
	assert.Equal(t, 7, Larger(7, 7))
	assert.Equal(t, "b", Larger("a", "b"))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{-5, "negative"},
		{0, "zero"},
		{1, "small positive"},
		{10, "small positive"},
		{11, "large positive"},
		{100, "large positive"},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, Describe(tt.n), "Describe(%d)", tt.n)
	}
}

func TestGrade(t *testing.T) {
	tests := map[rune]string{
		'A': "Excellent",
		'B': "Good",
		'C': "Average",
		'D': "Below Average",
		'F': "Failing",
		'E': "Invalid grade",
		'a': "Invalid grade",
		'Z': "Invalid grade",
	}
	for g, want := range tests {
		assert.Equalf(t, want, Grade(g), "Grade(%q)", g)
	}
}

func TestSafeDivide(t *testing.T) {
	got, err := SafeDivide(10, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	_, err = SafeDivide(10, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.EqualError(t, err, "division by zero")
}
