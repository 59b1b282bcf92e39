package proto

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content subtype the glossary service speaks.
const CodecName = "json"

func init() {
	encoding.RegisterCodec(JSONCodec{})
}

// JSONCodec encodes messages as JSON on the gRPC wire.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSONCodec) Name() string { return CodecName }
