package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLen(t *testing.T) {
	s := "hello"
	assert.Equal(t, 5, Len(s))
	assert.Equal(t, "hello", s)
	assert.Equal(t, 0, Len(""))
}

func TestUppercase(t *testing.T) {
	s := "hello world"
	Uppercase(&s)
	assert.Equal(t, "HELLO WORLD", s)

	s = "mixed Case 123 ünïcode"
	Uppercase(&s)
	assert.Equal(t, "MIXED CASE 123 üNïCODE", s, "non-ASCII letters changed")
}

func TestFirstWord(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"hello world", "hello"},
		{"rust", "rust"},
		{"hello rust programming", "hello"},
		{"", ""},
		{" leading", ""},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, FirstWord(tt.s), "FirstWord(%q)", tt.s)
	}
}

func TestSecondWord(t *testing.T) {
	tests := []struct {
		s      string
		want   string
		wantOk bool
	}{
		{"hello world from rust", "world", true},
		{"hello world", "world", true},
		{"hello", "", false},
		{"", "", false},
		{"a  b", "", true},
	}
	for _, tt := range tests {
		got, ok := SecondWord(tt.s)
		assert.Equalf(t, tt.wantOk, ok, "SecondWord(%q)", tt.s)
		assert.Equalf(t, tt.want, got, "SecondWord(%q)", tt.s)
	}
}

func TestExclaim(t *testing.T) {
	s := "hello"
	assert.Equal(t, "hello!", Exclaim(s))
	assert.Equal(t, "hello", s)
}

func TestFirstRune(t *testing.T) {
	r, ok := FirstRune("hello")
	assert.True(t, ok)
	assert.Equal(t, 'h', r)

	r, ok = FirstRune("ünï")
	assert.True(t, ok)
	assert.Equal(t, 'ü', r)

	_, ok = FirstRune("")
	assert.False(t, ok)
}
