package api

import (
	"encoding/json"
	"fmt"

	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
)

// The backend wraps successes as {"success": true, "data": ...} but is
// not consistent about the shape of data for list endpoints: sometimes a
// direct array, sometimes an object holding a named array, sometimes the
// whole body is a bare array. The backend is unversioned and shared with
// the mobile apps, so compatibility wins over pinning one shape; the
// tolerance lives in this file and nowhere else.

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// Data unwraps the success envelope. A body without the envelope is
// returned as-is.
func Data(raw json.RawMessage) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Bare array or other non-object body.
		return raw, nil
	}
	if env.Success != nil && !*env.Success {
		return nil, apperr.APIErr(0, errorMessage(raw, 0))
	}
	if len(env.Data) > 0 {
		return env.Data, nil
	}
	return raw, nil
}

// DecodeList decodes a list payload into out (a pointer to a slice),
// accepting a direct array, an object with one of the given member
// names, or a bare array body.
func DecodeList(raw json.RawMessage, out any, members ...string) error {
	data, err := Data(raw)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err == nil {
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return apperr.Wrap(fmt.Errorf("unexpected list payload shape"))
	}
	for _, m := range members {
		if inner, ok := obj[m]; ok {
			if err := json.Unmarshal(inner, out); err != nil {
				return apperr.Wrap(fmt.Errorf("decode %q member: %w", m, err))
			}
			return nil
		}
	}
	return apperr.Wrap(fmt.Errorf("list payload has none of %v", members))
}

// DecodeObject decodes an object payload into out.
func DecodeObject(raw json.RawMessage, out any) error {
	data, err := Data(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperr.Wrap(fmt.Errorf("decode payload: %w", err))
	}
	return nil
}
