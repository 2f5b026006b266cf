package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswerValue(t *testing.T) {
	cases := map[string]AnswerValue{
		"yes": AnswerYes, "Y": AnswerYes, "1": AnswerYes, "true": AnswerYes,
		"no": AnswerNo, " n ": AnswerNo, "0": AnswerNo, "FALSE": AnswerNo,
		"unknown": AnswerUnknown, "u": AnswerUnknown, "?": AnswerUnknown, "2": AnswerUnknown,
	}
	for in, want := range cases {
		got, err := ParseAnswerValue(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAnswerValue("maybe")
	assert.Error(t, err)
}

func TestAnswerValue(t *testing.T) {
	for _, v := range AnswerValues {
		assert.True(t, v.Valid())
		parsed, err := ParseAnswerValue(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	assert.False(t, AnswerValue(3).Valid())
	assert.False(t, AnswerValue(-1).Valid())
	assert.Equal(t, "AnswerValue(9)", AnswerValue(9).String())
}
