package v1alpha1

import (
	"bytes"
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-armory/internal/errors"
)

// decode reads a Struct request into a wire request type, rejecting unknown fields
func decode(req *structpb.Struct, dst interface{}) error {
	if req == nil {
		return errors.InvalidArgument("request is required")
	}

	data, err := protojson.Marshal(req)
	if err != nil {
		return errors.Wrapf(err, "failed to read request")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	return nil
}

// encode writes a wire response type as a Struct
func encode(src interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(src)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode response")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrapf(err, "failed to encode response")
	}
	return out, nil
}
