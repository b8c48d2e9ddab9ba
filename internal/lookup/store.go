package lookup

import (
	"context"
	"database/sql"
)

// PGQuerier resolves area hierarchy rows from the covid19.area_reference
// table.
type PGQuerier struct {
	db *sql.DB
}

// NewPGQuerier builds a Querier backed by db.
func NewPGQuerier(db *sql.DB) *PGQuerier {
	return &PGQuerier{db: db}
}

const lookupQuery = `
SELECT area_type, area_code, area_name, destinations, parent, children
FROM covid19.area_reference
WHERE ($1 = '' OR area_type = $1)
AND ($2 = '' OR area_code = $2)
ORDER BY area_type ASC, area_name ASC, area_code ASC
`

// LookupAreas implements Querier.
func (q *PGQuerier) LookupAreas(ctx context.Context, areaType, areaCode string) ([]Record, error) {
	rows, err := q.db.QueryContext(ctx, lookupQuery, areaType, areaCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var destinations, parent, children sql.NullString

		if err := rows.Scan(&r.AreaType, &r.AreaCode, &r.AreaName, &destinations, &parent, &children); err != nil {
			return nil, err
		}

		r.Type = "area"
		r.Destinations = nullableJSON(destinations)
		r.Parent = nullableJSON(parent)
		r.Children = nullableJSON(children)

		out = append(out, r)
	}

	return out, rows.Err()
}
