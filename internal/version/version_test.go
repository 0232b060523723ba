package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringCarriesAllFields(t *testing.T) {
	s := String()
	assert.Contains(t, s, Version)
	assert.Contains(t, s, BuildTime)
	assert.Contains(t, s, GitCommit)
}
