package repository

import (
	"context"
)

// SheetRepository fetches the published spreadsheet export as raw CSV text.
type SheetRepository interface {
	FetchDocument(ctx context.Context) (string, error)
}
