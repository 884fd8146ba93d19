package salesgw

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"pos-register/internal/domain/catalog"
	"pos-register/internal/domain/sale"
	"pos-register/internal/infra"
	"pos-register/internal/pkg/config"
	"pos-register/internal/pkg/errs"
	"pos-register/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
)

// stock rejection code published in the authority's error contract
const codeInsufficientStock = "INSUFFICIENT_STOCK"

type httpResult struct {
	status int
	body   []byte
}

// Client talks JSON/HTTP to the remote sales authority. Every call goes
// through one shared circuit breaker; transport errors and 5xx trip it,
// business rejections (4xx) do not.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[httpResult]
	logger     *slog.Logger
}

func NewClient(cfg config.SalesAPIConfig, logger *slog.Logger) *Client {
	settings := gobreaker.Settings{
		Name:    cfg.BreakerName,
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.BreakerFailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("sales authority breaker state changed",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    gobreaker.NewCircuitBreaker[httpResult](settings),
		logger:     logger,
	}
}

func (c *Client) CreateSession(ctx context.Context) (*sale.Session, error) {
	res, err := c.do(ctx, http.MethodPost, "/sales", nil)
	if err != nil {
		return nil, err
	}
	if res.status != http.StatusCreated && res.status != http.StatusOK {
		return nil, c.classifyRejection("create session", res)
	}
	return c.decodeSession("create session", res.body)
}

func (c *Client) AddItem(ctx context.Context, sessionID, catalogEntryID uuid.UUID, quantity int) (*sale.Session, error) {
	path := fmt.Sprintf("/sales/%s/items", sessionID)
	res, err := c.do(ctx, http.MethodPost, path, addItemRequest{
		CatalogEntryID: catalogEntryID,
		Quantity:       quantity,
	})
	if err != nil {
		return nil, err
	}
	if res.status != http.StatusOK && res.status != http.StatusCreated {
		return nil, c.classifyRejection("add item", res)
	}
	return c.decodeSession("add item", res.body)
}

func (c *Client) UpdateItem(ctx context.Context, sessionID, lineItemID uuid.UUID, quantity int) (*sale.Session, error) {
	path := fmt.Sprintf("/sales/%s/items/%s", sessionID, lineItemID)
	res, err := c.do(ctx, http.MethodPatch, path, updateItemRequest{Quantity: quantity})
	if err != nil {
		return nil, err
	}
	if res.status != http.StatusOK {
		return nil, c.classifyRejection("update item", res)
	}
	return c.decodeSession("update item", res.body)
}

func (c *Client) RemoveItem(ctx context.Context, sessionID, lineItemID uuid.UUID) (*sale.Session, error) {
	path := fmt.Sprintf("/sales/%s/items/%s", sessionID, lineItemID)
	res, err := c.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return nil, err
	}
	if res.status != http.StatusOK {
		return nil, c.classifyRejection("remove item", res)
	}
	return c.decodeSession("remove item", res.body)
}

func (c *Client) Finalize(ctx context.Context, sessionID uuid.UUID, contact *sale.CustomerContact) (*sale.Session, error) {
	var req finalizeRequest
	if contact != nil && !contact.IsZero() {
		req.CustomerContact = ptr.To(contact.Phone())
	}

	path := fmt.Sprintf("/sales/%s/finalize", sessionID)
	res, err := c.do(ctx, http.MethodPost, path, req)
	if err != nil {
		return nil, err
	}
	if res.status != http.StatusOK {
		return nil, c.classifyRejection("finalize", res)
	}
	return c.decodeSession("finalize", res.body)
}

func (c *Client) Cancel(ctx context.Context, sessionID uuid.UUID) error {
	path := fmt.Sprintf("/sales/%s/cancel", sessionID)
	res, err := c.do(ctx, http.MethodPost, path, nil)
	if err != nil {
		return err
	}
	if res.status != http.StatusNoContent && res.status != http.StatusOK {
		return c.classifyRejection("cancel", res)
	}
	return nil
}

func (c *Client) ListCatalog(ctx context.Context, limit int) ([]catalog.Entry, error) {
	path := fmt.Sprintf("/catalog?limit=%d", limit)
	res, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if res.status != http.StatusOK {
		return nil, c.classifyRejection("list catalog", res)
	}
	return c.decodeEntries("list catalog", res.body)
}

func (c *Client) SearchCatalog(ctx context.Context, query string) ([]catalog.Entry, error) {
	path := "/catalog/search?q=" + url.QueryEscape(query)
	res, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if res.status != http.StatusOK {
		return nil, c.classifyRejection("search catalog", res)
	}
	return c.decodeEntries("search catalog", res.body)
}

func (c *Client) do(ctx context.Context, method, path string, reqBody any) (httpResult, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return httpResult{}, infra.WrapGatewayErr(c.logger, infra.KindBadResponse, "encode request", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return httpResult{}, infra.WrapGatewayErr(c.logger, infra.KindBadResponse, "build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	result, err := c.breaker.Execute(func() (httpResult, error) {
		resp, reqErr := c.httpClient.Do(req)
		if reqErr != nil {
			return httpResult{}, reqErr
		}
		defer func() { _ = resp.Body.Close() }()

		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return httpResult{}, readErr
		}

		res := httpResult{status: resp.StatusCode, body: body}
		if resp.StatusCode >= http.StatusInternalServerError {
			// counts as a breaker failure; 4xx rejections do not
			return res, errs.New("sales authority returned " + resp.Status)
		}
		return res, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return httpResult{}, infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "breaker open for "+method+" "+path, err)
		}
		return httpResult{}, infra.WrapGatewayErr(c.logger, infra.KindUnavailable, method+" "+path+" failed", err)
	}
	return result, nil
}

func (c *Client) classifyRejection(op string, res httpResult) error {
	switch res.status {
	case http.StatusNotFound:
		return infra.WrapGatewayErr(c.logger, infra.KindNotFound, op+" target not found", nil)
	case http.StatusConflict, http.StatusUnprocessableEntity:
		if decodeRemoteErrorCode(res.body) == codeInsufficientStock {
			return infra.WrapGatewayErr(c.logger, infra.KindStockRejected, op+" rejected for stock", nil)
		}
		return infra.WrapGatewayErr(c.logger, infra.KindRemoteRejected, op+" rejected by authority", nil)
	default:
		return infra.WrapGatewayErr(c.logger, infra.KindRemoteRejected,
			fmt.Sprintf("%s rejected with status %d", op, res.status), nil)
	}
}

func (c *Client) decodeSession(op string, body []byte) (*sale.Session, error) {
	var dto sessionDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindBadResponse, "decode "+op+" response", err)
	}
	session, err := dto.toDomain()
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindBadResponse, op+" returned invalid session", err)
	}
	return session, nil
}

func (c *Client) decodeEntries(op string, body []byte) ([]catalog.Entry, error) {
	var dtos []catalogEntryDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindBadResponse, "decode "+op+" response", err)
	}
	return entriesToDomain(dtos), nil
}
