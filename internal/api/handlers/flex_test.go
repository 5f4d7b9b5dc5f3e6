package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FlexList_AcceptsArraysAndCommaStrings(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{`["a"," b ",""]`, []string{"a", "b"}},
		{`"a, b,,c"`, []string{"a", "b", "c"}},
		{`"[\"x\",\"y\"]"`, []string{"x", "y"}},
		{`[1, 2.5, true]`, []string{"1", "2.5", "true"}},
		{`""`, []string{}},
	}
	for _, tt := range tests {
		var l FlexList
		require.NoError(t, json.Unmarshal([]byte(tt.in), &l), tt.in)
		assert.Equal(t, tt.want, []string(l), tt.in)
	}

	var l FlexList
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &l))
	assert.Error(t, json.Unmarshal([]byte(`[["nested"]]`), &l))
}

func Test_FlexFloat(t *testing.T) {
	var body struct {
		A FlexFloat `json:"a"`
		B FlexFloat `json:"b"`
		C FlexFloat `json:"c"`
		D FlexFloat `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":12.5,"b":" 300 ","c":"","d":null}`), &body))

	require.NotNil(t, body.A.Ptr())
	assert.Equal(t, 12.5, *body.A.Ptr())
	require.NotNil(t, body.B.Ptr())
	assert.Equal(t, 300.0, *body.B.Ptr())
	assert.Nil(t, body.C.Ptr())
	assert.Nil(t, body.D.Ptr())

	var f FlexFloat
	assert.Error(t, json.Unmarshal([]byte(`"cheap"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`"NaN"`), &f))
}

func Test_FlexInt(t *testing.T) {
	var i FlexInt
	require.NoError(t, json.Unmarshal([]byte(`"27"`), &i))
	require.NotNil(t, i.Ptr())
	assert.Equal(t, 27, *i.Ptr())

	assert.Error(t, json.Unmarshal([]byte(`27.5`), &i))
}

func Test_FlexString(t *testing.T) {
	var s FlexString
	require.NoError(t, json.Unmarshal([]byte(`1500`), &s))
	assert.Equal(t, FlexString("1500"), s)

	require.NoError(t, json.Unmarshal([]byte(`"договорная"`), &s))
	assert.Equal(t, FlexString("договорная"), s)

	assert.Error(t, json.Unmarshal([]byte(`true`), &s))
}
