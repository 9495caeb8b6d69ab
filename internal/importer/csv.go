// Package importer parses transaction CSV files into model transactions,
// filling in categories through the suggestion engine when a row doesn't
// name one.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/catalog"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
)

// dateFormats are tried in order when parsing the date column.
var dateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	time.RFC3339,
}

// Categorizer assigns a category to a description. The suggestion engine
// satisfies it.
type Categorizer interface {
	Suggest(description string) model.Category
}

// ParseResult carries the parsed transactions plus per-row failures.
type ParseResult struct {
	Transactions []model.Transaction
	Skipped      []RowError
}

// RowError records why one CSV row couldn't be imported.
type RowError struct {
	Err error
	Row int
}

// ParseCSV reads rows of the form
//
//	date,description,amount,type[,category][,currency][,original_amount]
//
// A header row is detected and skipped. Rows with an empty category column
// get one from the categorizer.
func ParseCSV(r io.Reader, userID string, categorizer Categorizer) (*ParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	result := &ParseResult{}
	for i, record := range records {
		if i == 0 && isHeader(record) {
			continue
		}

		txn, rowErr := parseRow(record, userID, categorizer)
		if rowErr != nil {
			result.Skipped = append(result.Skipped, RowError{Row: i + 1, Err: rowErr})
			continue
		}
		result.Transactions = append(result.Transactions, txn)
	}

	return result, nil
}

func parseRow(record []string, userID string, categorizer Categorizer) (model.Transaction, error) {
	if len(record) < 4 {
		return model.Transaction{}, fmt.Errorf("expected at least 4 columns, got %d", len(record))
	}

	date, err := parseDate(record[0])
	if err != nil {
		return model.Transaction{}, err
	}

	description := strings.TrimSpace(record[1])
	if description == "" {
		return model.Transaction{}, fmt.Errorf("empty description")
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("bad amount %q: %w", record[2], err)
	}
	if amount <= 0 {
		return model.Transaction{}, fmt.Errorf("amount must be positive, got %v", amount)
	}

	txnType := model.TransactionType(strings.ToLower(strings.TrimSpace(record[3])))
	if txnType != model.TypeExpense && txnType != model.TypeIncome {
		return model.Transaction{}, fmt.Errorf("bad type %q", record[3])
	}

	txn := model.Transaction{
		Date:        date,
		Description: description,
		Type:        txnType,
		Amount:      amount,
		UserID:      userID,
	}

	if len(record) > 4 && strings.TrimSpace(record[4]) != "" {
		cat, ok := catalog.ByID(strings.TrimSpace(record[4]))
		if !ok {
			return model.Transaction{}, fmt.Errorf("unknown category id %q", record[4])
		}
		txn.Category = cat
	} else {
		txn.Category = categorizer.Suggest(description)
	}

	if len(record) > 5 && strings.TrimSpace(record[5]) != "" {
		txn.Currency = strings.ToUpper(strings.TrimSpace(record[5]))
	}
	if len(record) > 6 && strings.TrimSpace(record[6]) != "" {
		original, parseErr := strconv.ParseFloat(strings.TrimSpace(record[6]), 64)
		if parseErr != nil {
			return model.Transaction{}, fmt.Errorf("bad original amount %q: %w", record[6], parseErr)
		}
		txn.OriginalAmount = original
	}

	return txn, nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, format := range dateFormats {
		if date, err := time.Parse(format, raw); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	_, err := parseDate(record[0])
	return err != nil
}
