package dto

import "github.com/jsamuelsen/costanza-quotes/internal/domain"

// QuoteRequest is the body of a create request. Season and episode are
// pointers so a missing field is told apart from zero.
type QuoteRequest struct {
	Quote     string `json:"quote"     validate:"notempty"`
	Season    *int   `json:"season"    validate:"required,gte=0"`
	Episode   *int   `json:"episode"   validate:"required,gte=0"`
	Character string `json:"character" validate:"notempty"`
}

// ToDomain converts a validated request into creation input.
func (r *QuoteRequest) ToDomain() domain.NewQuote {
	q := domain.NewQuote{
		Text:      r.Quote,
		Character: r.Character,
	}

	if r.Season != nil {
		q.Season = *r.Season
	}

	if r.Episode != nil {
		q.Episode = *r.Episode
	}

	return q
}

// QuoteRequestsToDomain converts a bulk body, preserving order.
func QuoteRequestsToDomain(reqs []QuoteRequest) []domain.NewQuote {
	out := make([]domain.NewQuote, 0, len(reqs))
	for i := range reqs {
		out = append(out, reqs[i].ToDomain())
	}

	return out
}

// QuoteResponse is the wire form of a stored quote.
type QuoteResponse struct {
	ID        int64  `json:"id"`
	Quote     string `json:"quote"`
	Season    int    `json:"season"`
	Episode   int    `json:"episode"`
	Character string `json:"character"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:        q.ID,
		Quote:     q.Text,
		Season:    q.Season,
		Episode:   q.Episode,
		Character: q.Character,
	}
}

// NewQuoteResponses converts a list of quotes. The result is never nil so
// an empty list encodes as [].
func NewQuoteResponses(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, NewQuoteResponse(q))
	}

	return out
}
