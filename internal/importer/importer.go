// Package importer implements the import pipeline that parses raw bank
// transaction rows into normalized BankTransaction records, rejecting or
// partially accepting malformed input and removing exact duplicates within
// a batch.
package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/emirfredy/ynab-syncher-sub000/internal/logging"
	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
)

// DateLayout is the calendar date format expected in raw rows
const DateLayout = "2006-01-02"

// RawTransactionRow is one unparsed row of a bank transaction feed
type RawTransactionRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Merchant    string `csv:"Merchant"`
}

// ImportStatus classifies the overall outcome of an import batch
type ImportStatus string

const (
	// StatusSuccess means no row errored.
	StatusSuccess ImportStatus = "success"
	// StatusPartialSuccess means a mix of successes and errors.
	StatusPartialSuccess ImportStatus = "partial_success"
	// StatusFailed means every row errored.
	StatusFailed ImportStatus = "failed"
)

// ImportResult reports the outcome of one import batch. Errors and
// Transactions both preserve original input order.
type ImportResult struct {
	Status            ImportStatus
	TotalProcessed    int
	Imported          int
	DuplicatesSkipped int
	Errored           int
	Errors            []string
	Transactions      []models.BankTransaction
}

// Importer runs the import pipeline
type Importer struct {
	log logging.Logger
}

// New creates a new Importer
func New(logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Importer{log: logger}
}

// Import parses the raw rows for an account into normalized transactions.
//
// The whole batch fails only on boundary violations: a blank account id, an
// empty batch, or any row with a blank description. Every other row is
// attempted independently; malformed dates and amounts become line-numbered
// errors without aborting sibling rows.
func (i *Importer) Import(accountID string, rows []RawTransactionRow) (*ImportResult, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, fmt.Errorf("account id must not be blank")
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no transaction rows supplied")
	}
	for n, row := range rows {
		if strings.TrimSpace(row.Description) == "" {
			return nil, fmt.Errorf("line %d: description must not be blank", n+1)
		}
	}

	result := &ImportResult{}
	seen := make(map[string]struct{}, len(rows))

	for n, row := range rows {
		line := n + 1
		result.TotalProcessed++

		date, err := time.Parse(DateLayout, strings.TrimSpace(row.Date))
		if err != nil {
			result.Errored++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: invalid date '%s'", line, row.Date))
			continue
		}

		amount, err := models.NewMoneyFromString(strings.TrimSpace(row.Amount))
		if err != nil {
			result.Errored++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: invalid amount '%s'", line, row.Amount))
			continue
		}

		key := fingerprint(accountID, row)
		if _, dup := seen[key]; dup {
			result.DuplicatesSkipped++
			i.log.Debug("Skipping duplicate row",
				logging.Field{Key: logging.FieldAccountID, Value: accountID},
				logging.Field{Key: logging.FieldLine, Value: line},
			)
			continue
		}
		seen[key] = struct{}{}

		merchant := strings.TrimSpace(row.Merchant)
		if merchant == "" {
			merchant = row.Description
		}

		result.Transactions = append(result.Transactions, models.BankTransaction{
			ID:          uuid.NewString(),
			AccountID:   accountID,
			Date:        date,
			Amount:      amount,
			Description: row.Description,
			Merchant:    models.TruncateMerchant(merchant),
			Direction:   models.DirectionForAmount(amount),
			Category:    models.UnknownCategory(),
		})
		result.Imported++
	}

	switch {
	case result.Errored == 0:
		result.Status = StatusSuccess
	case result.Errored == result.TotalProcessed:
		result.Status = StatusFailed
	default:
		result.Status = StatusPartialSuccess
	}

	i.log.Info("Import batch finished",
		logging.Field{Key: logging.FieldAccountID, Value: accountID},
		logging.Field{Key: logging.FieldStatus, Value: result.Status},
		logging.Field{Key: "total", Value: result.TotalProcessed},
		logging.Field{Key: "imported", Value: result.Imported},
		logging.Field{Key: "duplicates", Value: result.DuplicatesSkipped},
		logging.Field{Key: "errored", Value: result.Errored},
	)

	return result, nil
}

// fingerprint computes the duplicate-detection key for a row. It is the
// exact concatenation of account id and the raw date, amount, and
// description strings. The description is deliberately case-sensitive and
// non-trimmed: whitespace or case differences make two otherwise-identical
// rows distinct transactions.
func fingerprint(accountID string, row RawTransactionRow) string {
	return accountID + "|" + row.Date + "|" + row.Amount + "|" + row.Description
}
