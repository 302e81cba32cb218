// Package pricing computes booking totals. It is pure: the caller resolves
// the ticket tier and the party, the package just applies the rate rules.
package pricing

import (
	"errors"

	"zoobackend/model"
)

type ErrCode string

const (
	ErrBadNationality ErrCode = "BAD_NATIONALITY"
	ErrBadParty       ErrCode = "BAD_PARTY"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// QuoteReq is the wire shape for price quotes: the selected tier plus the
// party composition.
type QuoteReq struct {
	TicketID    string `json:"ticketId" validate:"required"`
	Nationality string `json:"nationality" validate:"required,oneof=Indian Foreigner"`
	Adults      int    `json:"adults" validate:"required,gte=1"`
	Children    int    `json:"children" validate:"gte=0"`
}

// Breakdown is a computed price quote. PerChild is always half of
// PerAdult regardless of tier.
type Breakdown struct {
	TicketID    string  `json:"ticketId"`
	TicketName  string  `json:"ticketName"`
	Nationality string  `json:"nationality"`
	Adults      int     `json:"adults"`
	Children    int     `json:"children"`
	PerAdult    float64 `json:"perAdult"`
	PerChild    float64 `json:"perChild"`
	Total       float64 `json:"total"`
}

// Quote computes the total for a party on the given tier. The per-adult
// rate follows nationality; children get a flat 50% discount.
func Quote(t model.TicketType, nationality model.Nationality, adults, children int) (*Breakdown, error) {
	if adults < 1 || children < 0 {
		return nil, makeErr(ErrBadParty)
	}

	var perAdult float64
	switch nationality {
	case model.NationalityIndian:
		perAdult = t.PriceIndian
	case model.NationalityForeigner:
		perAdult = t.PriceForeigner
	default:
		return nil, makeErr(ErrBadNationality)
	}

	perChild := 0.5 * perAdult
	return &Breakdown{
		TicketID:    t.ID,
		TicketName:  t.Name,
		Nationality: string(nationality),
		Adults:      adults,
		Children:    children,
		PerAdult:    perAdult,
		PerChild:    perChild,
		Total:       float64(adults)*perAdult + float64(children)*perChild,
	}, nil
}
