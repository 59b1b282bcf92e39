// Package proto declares the glossary RPC contract: request and response
// messages, the service descriptor and a client stub. Messages travel as
// JSON through JSONCodec.
package proto

import "google.golang.org/protobuf/types/known/timestamppb"

type Term struct {
	Id          int64                  `json:"id,omitempty"`
	Keyword     string                 `json:"keyword"`
	Description string                 `json:"description"`
	CreatedAt   *timestamppb.Timestamp `json:"created_at,omitempty"`
	UpdatedAt   *timestamppb.Timestamp `json:"updated_at,omitempty"`
}

type ListTermsRequest struct{}

type ListTermsResponse struct {
	Items []*Term `json:"items"`
}

type GetTermRequest struct {
	Keyword string `json:"keyword"`
}

type GetTermResponse struct {
	Item *Term `json:"item"`
}

type CreateTermRequest struct {
	Item *Term `json:"item"`
}

type CreateTermResponse struct {
	Item *Term `json:"item"`
}

// UpdateTermRequest addresses a term by its current keyword. Absent
// optional fields are left unchanged.
type UpdateTermRequest struct {
	Keyword     string  `json:"keyword"`
	NewKeyword  *string `json:"new_keyword,omitempty"`
	Description *string `json:"description,omitempty"`
}

type UpdateTermResponse struct {
	Item *Term `json:"item"`
}

type DeleteTermRequest struct {
	Keyword string `json:"keyword"`
}

type DeleteTermResponse struct {
	Ok bool `json:"ok"`
}
