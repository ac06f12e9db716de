package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	assert.True(t, Code(3).Has(CodeDuplicate))
	assert.True(t, Code(3).Has(CodeMissing))
	assert.False(t, Code(2).Has(CodeDuplicate))
	assert.False(t, Code(0).Has(CodeMissing))

	for c := Code(0); c <= 3; c++ {
		assert.True(t, c.Valid())
		assert.NotEqual(t, "invalid", c.Describe())
	}
	assert.False(t, Code(4).Valid())
	assert.False(t, Code(-1).Valid())

	assert.Equal(t, IconOK, Code(0).Icon())
	assert.Equal(t, IconDuplicate, Code(1).Icon())
	assert.Equal(t, IconMissing, Code(2).Icon())
	assert.Equal(t, IconBoth, Code(3).Icon())
}

func TestResult(t *testing.T) {
	res := Result{
		Entries: []PathEntry{
			{Index: 0, Value: "/a", Code: CodeKeep},
			{Index: 1, Value: "/a", Code: CodeDuplicate},
			{Index: 2, Value: "/b", Code: CodeKeep},
		},
		Kept: []string{"/a", "/b"},
	}

	assert.Equal(t, "/a:/b", res.Value())
	assert.Equal(t, 3, res.Original())
	assert.Equal(t, 2, res.Final())
	assert.Equal(t, 1, res.Removed())
	assert.True(t, res.Entries[0].Kept())
	assert.False(t, res.Entries[1].Kept())

	assert.Equal(t, "", Result{}.Value())
}
