package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestDataUnwrapsEnvelope(t *testing.T) {
	raw := json.RawMessage(`{"success":true,"data":{"id":"1"}}`)
	data, err := Data(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, string(data))
}

func TestDataPassesThroughUnwrappedBody(t *testing.T) {
	raw := json.RawMessage(`{"id":"1","name":"x"}`)
	data, err := Data(raw)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(data))
}

func TestDataRejectsFailureEnvelope(t *testing.T) {
	raw := json.RawMessage(`{"success":false,"message":"no such shop"}`)
	_, err := Data(raw)
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.API, ae.Kind)
	assert.Equal(t, "no such shop", ae.PublicMsg)
}

func TestDecodeListShapes(t *testing.T) {
	want := []item{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}

	cases := map[string]string{
		"enveloped direct array": `{"success":true,"data":[{"id":"1","name":"a"},{"id":"2","name":"b"}]}`,
		"enveloped named member": `{"success":true,"data":{"items":[{"id":"1","name":"a"},{"id":"2","name":"b"}]}}`,
		"bare array body":        `[{"id":"1","name":"a"},{"id":"2","name":"b"}]`,
		"named member no envelope": `{"products":[{"id":"1","name":"a"},{"id":"2","name":"b"}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			var got []item
			require.NoError(t, DecodeList(json.RawMessage(body), &got, "products", "items"))
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeListUnknownMemberFails(t *testing.T) {
	var got []item
	err := DecodeList(json.RawMessage(`{"widgets":[]}`), &got, "products", "items")
	assert.Error(t, err)
}

func TestDecodeObject(t *testing.T) {
	var got item
	require.NoError(t, DecodeObject(json.RawMessage(`{"success":true,"data":{"id":"9","name":"z"}}`), &got))
	assert.Equal(t, item{ID: "9", Name: "z"}, got)
}
