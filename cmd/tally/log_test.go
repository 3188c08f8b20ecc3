package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	tests := []struct {
		name string
		log  func(buf *bytes.Buffer)
		want []string
	}{
		{
			name: "record attrs",
			log: func(buf *bytes.Buffer) {
				newLogger(buf, true).Debug("hello", "k", "v")
			},
			want: []string{"DEBUG hello k=v\n"},
		},
		{
			name: "with attrs",
			log: func(buf *bytes.Buffer) {
				newLogger(buf, true).With("k", "v").Debug("hello", "n", 1)
			},
			want: []string{"DEBUG hello k=v n=1\n"},
		},
		{
			name: "with group",
			log: func(buf *bytes.Buffer) {
				newLogger(buf, true).With("a", 1).WithGroup("g").With("b", 2).Warn("hi", "c", 3)
			},
			want: []string{" WARN hi a=1 g.b=2 g.c=3\n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(&buf)

			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
			assert.NotContains(t, buf.String(), "msg=")
		})
	}
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer

	l := newLogger(&buf, false).With("k", "v")
	l.Debug("hidden")
	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
