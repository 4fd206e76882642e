// Package common provides shared CSV input/output helpers.
package common

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/emirfredy/ynab-syncher-sub000/internal/importer"
	"github.com/emirfredy/ynab-syncher-sub000/internal/logging"
	"github.com/emirfredy/ynab-syncher-sub000/internal/models"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// ReadRawRows reads a raw bank transaction export into RawTransactionRow
// values using gocsv
func ReadRawRows(filePath string) ([]importer.RawTransactionRow, error) {
	log.Info("Reading CSV file", logging.Field{Key: logging.FieldInputFile, Value: filePath})

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []importer.RawTransactionRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.Info("Successfully read CSV data", logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// reconciliationRow is the CSV shape of one reconciliation report line
type reconciliationRow struct {
	Status      string `csv:"Status"`
	Date        string `csv:"Date"`
	Amount      string `csv:"Amount"`
	Description string `csv:"Description"`
	Merchant    string `csv:"Merchant"`
	Category    string `csv:"Category"`
}

// WriteReconciliationReport writes the matched and missing transactions of
// a reconciliation run to a CSV file
func WriteReconciliationReport(result models.ReconciliationResult, csvFile string) error {
	log.Info("Writing reconciliation report",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(result.Matched) + len(result.Missing)},
	)

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]reconciliationRow, 0, len(result.Matched)+len(result.Missing))
	for _, tx := range result.Matched {
		rows = append(rows, toReportRow("matched", tx))
	}
	for _, tx := range result.Missing {
		rows = append(rows, toReportRow("missing", tx))
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

func toReportRow(status string, tx models.BankTransaction) reconciliationRow {
	return reconciliationRow{
		Status:      status,
		Date:        tx.Date.Format(importer.DateLayout),
		Amount:      tx.Amount.String(),
		Description: tx.Description,
		Merchant:    tx.Merchant,
		Category:    tx.Category.String(),
	}
}
