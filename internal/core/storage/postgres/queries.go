package postgres

// SQL for case storage. Bucket filters take a text[] parameter ($1 = ANY) so a window's
// bucket set is a single bind value regardless of its size.

const caseColumns = `
			id, county, source, full_name, booked_at, bond_amount::TEXT,
			time_bucket_v2, ingested_at, data, ingest_seq`

const (
	// querySaveCase inserts a case with (county, id) idempotency.
	// ON CONFLICT DO NOTHING returns no rows (sql.ErrNoRows) for duplicates.
	querySaveCase = `
		INSERT INTO cases (
			id, county, source, full_name, booked_at,
			bond_amount, time_bucket_v2, ingested_at, data
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (county, id) DO NOTHING
		RETURNING ingest_seq
	`

	queryGetCase = `
		SELECT` + caseColumns + `
		FROM cases
		WHERE county = $1 AND id = $2
	`

	// queryRetrieveCasesAfterCursor pages every case in strict ingest order.
	// Used by the rebucket sweep and the coverage check.
	queryRetrieveCasesAfterCursor = `
		SELECT` + caseColumns + `
		FROM cases
		WHERE ingest_seq > $1
		ORDER BY ingest_seq ASC
		LIMIT $2
	`

	queryUpdateBucket = `
		UPDATE cases
		SET time_bucket_v2 = $1
		WHERE ingest_seq = $2
	`

	// queryCountByCountyBucket is the raw grouping the validation tooling trusts.
	// It deliberately avoids any window logic.
	queryCountByCountyBucket = `
		SELECT county, time_bucket_v2, COUNT(*), COALESCE(SUM(bond_amount), 0)::TEXT
		FROM cases
		GROUP BY county, time_bucket_v2
		ORDER BY county ASC, time_bucket_v2 ASC
	`

	queryAggregateByCounty = `
		SELECT county, COUNT(*), COALESCE(SUM(bond_amount), 0)::TEXT
		FROM cases
		WHERE time_bucket_v2 = ANY($1)
		GROUP BY county
		ORDER BY county ASC
	`

	queryTopByBond = `
		SELECT` + caseColumns + `
		FROM cases
		WHERE time_bucket_v2 = ANY($1)
		ORDER BY bond_amount DESC, booked_at DESC
		LIMIT $2
	`
)
