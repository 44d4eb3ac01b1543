package parser

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSheetsParser reads product rows out of a spreadsheet. Expected layout:
// a header row, then one product per row with name in column A and price in
// column B. Prices stay strings here; validation happens in the import service.
type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

type ProductRow struct {
	Name  string
	Price string
}

func New(cfg Config) (*GoogleSheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

func (p *GoogleSheetsParser) ParseProducts(ctx context.Context, spreadsheetID string) ([]ProductRow, error) {
	readRange := "A:B"
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("no data found in spreadsheet")
	}

	rows := make([]ProductRow, 0, len(resp.Values))

	// skip header
	for i := 1; i < len(resp.Values); i++ {
		row := resp.Values[i]
		if len(row) == 0 {
			continue
		}

		name := strings.TrimSpace(fmt.Sprintf("%v", row[0]))
		if name == "" {
			continue
		}

		product := ProductRow{Name: name}
		if len(row) > 1 {
			product.Price = strings.TrimSpace(fmt.Sprintf("%v", row[1]))
		}

		rows = append(rows, product)
	}

	return rows, nil
}
