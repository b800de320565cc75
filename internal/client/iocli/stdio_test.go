package iocli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStdio(t *testing.T) {
	io := NewStdio()
	assert.NotNil(t, io)
}

func TestStdioWrite(t *testing.T) {
	// Write уходит в stdout, проверяем только контракт io.Writer.
	s := &Stdio{}

	n, err := s.Write([]byte("hola\n"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
}
