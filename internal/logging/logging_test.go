package logging

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	s := NewSet(&buf, false)

	game := s.For("game")
	assert.Same(t, game, s.For("game"))

	game.Debug("hidden")
	assert.Empty(t, buf.String())

	s.SetDebug(true)
	assert.True(t, s.Debug())
	s.For("ai").Debug("visible")
	game.Debug("also visible")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "also visible")
	assert.Contains(t, buf.String(), "ai")
}

func TestRingKeepsLastLines(t *testing.T) {
	r := NewRing(3)
	_, _ = io.WriteString(r, "one\ntwo\nthr")
	_, _ = io.WriteString(r, "ee\nfour\n")

	assert.Equal(t, []string{"two", "three", "four"}, r.Lines(0))
	assert.Equal(t, []string{"four"}, r.Lines(1))

	r.Clear()
	assert.Empty(t, r.Lines(0))
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))
	l := Discard()
	assert.Same(t, l, OrDiscard(l))
}
