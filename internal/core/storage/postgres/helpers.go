package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	v1 "github.com/bondwatch-lab/bondwatch/internal/api/v1"
	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	"github.com/shopspring/decimal"
)

// marshalCaseData marshals the raw scraped document.
// Nil data produces nil (SQL NULL) rather than JSON "null".
func marshalCaseData(c *v1.Case) ([]byte, error) {
	if len(c.Data) == 0 {
		return nil, nil
	}
	dataJSON, err := json.Marshal(c.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal data: %w", err)
	}
	return dataJSON, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanCaseRow scans one row selected with caseColumns.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanCaseRow(row scanner) (*v1.Case, error) {
	var (
		c         v1.Case
		fullName  sql.NullString
		bondStr   string
		bucketStr string
		dataJSON  []byte
	)

	err := row.Scan(
		&c.ID,
		&c.County,
		&c.Source,
		&fullName,
		&c.BookedAt,
		&bondStr,
		&bucketStr,
		&c.IngestedAt,
		&dataJSON,
		&c.IngestSeq,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan case row: %w", err)
	}

	c.FullName = fullName.String
	c.TimeBucket = bucket.Bucket(bucketStr)

	bond, err := decimal.NewFromString(bondStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bond_amount %q: %w", bondStr, err)
	}
	c.BondAmount = bond

	if len(dataJSON) > 0 {
		if err := json.Unmarshal(dataJSON, &c.Data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal data: %w", err)
		}
	}

	return &c, nil
}
