package response

import (
	"time"

	"pos-register/internal/domain/sale"
	"pos-register/internal/usecase"

	"github.com/google/uuid"
)

type LineItemResponse struct {
	ID             uuid.UUID `json:"id"`
	CatalogEntryID uuid.UUID `json:"catalogEntryId"`
	DisplayName    string    `json:"displayName"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int       `json:"quantity"`
	SubtotalCents  int64     `json:"subtotalCents"`
}

type SessionResponse struct {
	ID             uuid.UUID          `json:"id"`
	SequenceNumber int64              `json:"sequenceNumber"`
	Status         string             `json:"status"`
	Items          []LineItemResponse `json:"items"`
	TotalCents     int64              `json:"totalCents"`
}

type NoticeResponse struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurredAt"`
}

type CheckoutStateResponse struct {
	Session *SessionResponse `json:"session"`
	Notices []NoticeResponse `json:"notices"`
}

type FinalizeResponse struct {
	Session     *SessionResponse `json:"session"`
	ReceiptLink string           `json:"receiptLink,omitempty"`
}

func FromSession(s *sale.Session) *SessionResponse {
	if s == nil {
		return nil
	}

	items := make([]LineItemResponse, len(s.Items()))
	for i, li := range s.Items() {
		items[i] = LineItemResponse{
			ID:             li.ID(),
			CatalogEntryID: li.CatalogEntryID(),
			DisplayName:    li.DisplayName(),
			UnitPriceCents: li.UnitPrice().Cents(),
			Quantity:       li.Quantity(),
			SubtotalCents:  li.Subtotal().Cents(),
		}
	}

	return &SessionResponse{
		ID:             s.ID(),
		SequenceNumber: s.SequenceNumber(),
		Status:         s.Status().String(),
		Items:          items,
		TotalCents:     s.Total().Cents(),
	}
}

func FromNotices(notices []usecase.Notice) []NoticeResponse {
	out := make([]NoticeResponse, len(notices))
	for i, n := range notices {
		out[i] = NoticeResponse{
			Code:       n.Code,
			Message:    n.Message,
			OccurredAt: n.OccurredAt,
		}
	}
	return out
}
