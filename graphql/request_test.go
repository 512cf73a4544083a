package graphql

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const putPost = "mutation PutPost($id: ID!, $title: String!) { putPost(id: $id, title: $title) { id title } }"

func TestNewRequestDefaults(t *testing.T) {
	req := NewRequest("{ ping }")

	assert.Equal(t, "{ ping }", req.Query)
	assert.NotNil(t, req.Variables)
	assert.Empty(t, req.Variables)
	assert.Empty(t, req.OperationName)
}

func TestNewRequestOptions(t *testing.T) {
	req := NewRequest(putPost,
		WithVariables(map[string]any{"id": "123", "title": "draft"}),
		WithVariable("title", "Hello World!"),
		WithOperationName("PutPost"),
	)

	assert.Equal(t, map[string]any{"id": "123", "title": "Hello World!"}, req.Variables)
	assert.Equal(t, "PutPost", req.OperationName)
}

func TestEncode(t *testing.T) {
	t.Run("omits operation name when unset", func(t *testing.T) {
		body, err := Encode(NewRequest("{ ping }"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"query":"{ ping }","variables":{}}`, string(body))
	})

	t.Run("nil variables are sent as an empty object", func(t *testing.T) {
		body, err := Encode(Request{Query: "{ ping }"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"query":"{ ping }","variables":{}}`, string(body))
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := Encode(NewRequest(""))
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("nested variables", func(t *testing.T) {
		req := NewRequest(putPost,
			WithVariable("input", map[string]any{"tags": []any{"a", "b"}, "draft": true, "score": nil}),
			WithOperationName("PutPost"),
		)
		body, err := Encode(req)
		require.NoError(t, err)

		var wire map[string]any
		require.NoError(t, json.Unmarshal(body, &wire))
		assert.Equal(t, "PutPost", wire["operationName"])
		assert.Equal(t, map[string]any{
			"input": map[string]any{"tags": []any{"a", "b"}, "draft": true, "score": nil},
		}, wire["variables"])
	})
}

func TestRequestRoundTrip(t *testing.T) {
	req := NewRequest(putPost,
		WithVariables(map[string]any{"id": "123", "title": "Hello World!"}),
		WithOperationName("PutPost"),
	)

	body, err := Encode(req)
	require.NoError(t, err)

	got, err := DecodeRequest(body)
	require.NoError(t, err)
	assert.Equal(t, req, got)
}

func TestDecodeRequestWithoutVariables(t *testing.T) {
	got, err := DecodeRequest([]byte(`{"query":"{ ping }"}`))
	require.NoError(t, err)
	assert.Equal(t, NewRequest("{ ping }"), got)

	_, err = DecodeRequest([]byte(`{"query":`))
	assert.Error(t, err)
}
