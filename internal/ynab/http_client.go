package ynab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/emirfredy/ynab-syncher-sub000/internal/logging"
	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
)

// DefaultBaseURL is the public YNAB v1 API endpoint
const DefaultBaseURL = "https://api.ynab.com/v1"

const wireDateLayout = "2006-01-02"

// HTTPClient talks to the YNAB v1 API. Amounts travel as milliunits
// (amount * 1000) per the YNAB wire format.
type HTTPClient struct {
	baseURL  string
	token    string
	budgetID string
	client   *http.Client
	log      logging.Logger
}

// NewHTTPClient creates a client for the YNAB API. budgetID identifies the
// budget whose transactions are read; creation targets the budget id passed
// per call.
func NewHTTPClient(baseURL, token, budgetID string, logger logging.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &HTTPClient{
		baseURL:  baseURL,
		token:    token,
		budgetID: budgetID,
		client:   &http.Client{Timeout: 30 * time.Second},
		log:      logger,
	}
}

// transactionPayload mirrors the YNAB API transaction shape
type transactionPayload struct {
	ID           string `json:"id,omitempty"`
	AccountID    string `json:"account_id"`
	Date         string `json:"date"`
	Amount       int64  `json:"amount"`
	PayeeName    string `json:"payee_name,omitempty"`
	Memo         string `json:"memo,omitempty"`
	CategoryID   string `json:"category_id,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
	Cleared      string `json:"cleared"`
	Approved     bool   `json:"approved"`
	FlagColor    string `json:"flag_color,omitempty"`
}

type errorResponse struct {
	Error struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Detail string `json:"detail"`
	} `json:"error"`
}

// CreateTransaction creates one transaction in the given budget
func (c *HTTPClient) CreateTransaction(ctx context.Context, budgetID string, tx models.YnabTransaction) (models.YnabTransaction, error) {
	body, err := json.Marshal(struct {
		Transaction transactionPayload `json:"transaction"`
	}{Transaction: toPayload(tx)})
	if err != nil {
		return models.YnabTransaction{}, fmt.Errorf("failed to encode transaction: %w", err)
	}

	endpoint := fmt.Sprintf("%s/budgets/%s/transactions", c.baseURL, url.PathEscape(budgetID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return models.YnabTransaction{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return models.YnabTransaction{}, &ServiceError{Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.YnabTransaction{}, c.serviceError(resp)
	}

	var created struct {
		Data struct {
			Transaction transactionPayload `json:"transaction"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return models.YnabTransaction{}, &ServiceError{Message: fmt.Sprintf("failed to decode response: %v", err)}
	}

	c.log.Debug("Created budget transaction",
		logging.Field{Key: logging.FieldBudgetID, Value: budgetID},
		logging.Field{Key: logging.FieldTransactionID, Value: created.Data.Transaction.ID},
	)
	return fromPayload(created.Data.Transaction)
}

// GetTransactionsByAccountAndDateRange returns the budget transactions of
// one account within an inclusive date range
func (c *HTTPClient) GetTransactionsByAccountAndDateRange(ctx context.Context, accountID string, from, to time.Time) ([]models.YnabTransaction, error) {
	endpoint := fmt.Sprintf("%s/budgets/%s/accounts/%s/transactions?since_date=%s",
		c.baseURL, url.PathEscape(c.budgetID), url.PathEscape(accountID), from.Format(wireDateLayout))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ServiceError{Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.serviceError(resp)
	}

	var listing struct {
		Data struct {
			Transactions []transactionPayload `json:"transactions"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, &ServiceError{Message: fmt.Sprintf("failed to decode response: %v", err)}
	}

	// The API only filters by since_date; the upper bound is applied here.
	transactions := make([]models.YnabTransaction, 0, len(listing.Data.Transactions))
	for _, payload := range listing.Data.Transactions {
		tx, err := fromPayload(payload)
		if err != nil {
			return nil, err
		}
		if tx.Date.After(to) {
			continue
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func (c *HTTPClient) serviceError(resp *http.Response) error {
	var body errorResponse
	message := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error.Detail != "" {
		message = body.Error.Detail
	}
	return &ServiceError{Message: message, StatusCode: resp.StatusCode}
}

func toPayload(tx models.YnabTransaction) transactionPayload {
	cleared := string(tx.Cleared)
	if cleared == "" {
		cleared = string(models.ClearedStatusUncleared)
	}
	payload := transactionPayload{
		ID:        tx.ID,
		AccountID: tx.AccountID,
		Date:      tx.Date.Format(wireDateLayout),
		Amount:    tx.Amount.Milliunits(),
		PayeeName: tx.PayeeName,
		Memo:      tx.Memo,
		Cleared:   cleared,
		Approved:  tx.Approved,
		FlagColor: tx.FlagColor,
	}
	if tx.Category.IsBudgetCategory() {
		payload.CategoryID = tx.Category.ID()
	}
	return payload
}

func fromPayload(payload transactionPayload) (models.YnabTransaction, error) {
	date, err := time.Parse(wireDateLayout, payload.Date)
	if err != nil {
		return models.YnabTransaction{}, &ServiceError{Message: fmt.Sprintf("invalid transaction date '%s'", payload.Date)}
	}

	category := models.UnknownCategory()
	if payload.CategoryID != "" {
		category = models.NewBudgetCategory(payload.CategoryID, payload.CategoryName)
	}

	amount := models.NewMoney(decimal.NewFromInt(payload.Amount).Div(decimal.NewFromInt(1000)))
	return models.YnabTransaction{
		ID:        payload.ID,
		AccountID: payload.AccountID,
		Date:      date,
		Amount:    amount,
		PayeeName: payload.PayeeName,
		Memo:      payload.Memo,
		Category:  category,
		Cleared:   models.ClearedStatus(payload.Cleared),
		Approved:  payload.Approved,
		FlagColor: payload.FlagColor,
	}, nil
}
