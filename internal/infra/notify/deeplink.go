package notify

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"pos-register/internal/domain/sale"
)

// DeepLinkNotifier builds a wa.me receipt link for the customer contact
// captured at finalize. The link is handed back to the terminal UI to
// open; the register itself never sends the message.
type DeepLinkNotifier struct {
	logger *slog.Logger
}

func NewDeepLinkNotifier(logger *slog.Logger) *DeepLinkNotifier {
	return &DeepLinkNotifier{logger: logger}
}

func (n *DeepLinkNotifier) ReceiptLink(session *sale.Session, contact sale.CustomerContact) string {
	message := fmt.Sprintf(
		"Thank you for your purchase! Sale #%d, %d item(s), total %s.",
		session.SequenceNumber(),
		len(session.Items()),
		formatCents(session.Total().Cents()),
	)

	link := "https://wa.me/" + strings.TrimPrefix(contact.Phone(), "+") +
		"?text=" + url.QueryEscape(message)

	n.logger.Info("receipt hand-off link built",
		"session_id", session.ID(), "sequence", session.SequenceNumber())
	return link
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
