package must

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDo(t *testing.T) {
	assert.NotPanics(t, func() { Do(nil) })
	assert.PanicsWithError(t, "oops", func() { Do(errors.New("oops")) })
}

func TestGet(t *testing.T) {
	assert.Equal(t, 42, Get(strconv.Atoi("42")))

	var n int
	assert.Panics(t, func() {
		n = Get(strconv.Atoi("forty-two"))
	})
	assert.Equal(t, 0, n)
}

func TestGet2(t *testing.T) {
	f := func(fail bool) (int, string, error) {
		if fail {
			return 1, "str", errors.New("oops")
		}
		return 1, "str", nil
	}

	var r1 int
	var r2 string

	assert.PanicsWithError(t, "oops", func() {
		r1, r2 = Get2(f(true))
	})
	assert.Equal(t, 0, r1)
	assert.Equal(t, "", r2)

	r1, r2 = Get2(f(false))
	assert.Equal(t, 1, r1)
	assert.Equal(t, "str", r2)
}
