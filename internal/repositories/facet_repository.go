package repositories

import (
	"context"
	"database/sql"
	"time"

	"numerica-backend/internal/category"
	"numerica-backend/internal/domain"
	"numerica-backend/internal/domain/models"
	"numerica-backend/internal/query"
)

// FacetRepository serves the dashboard's filter panels: selectable values
// with live cardinality, available periods, and unique-employee counts.
type FacetRepository struct {
	DB           *sql.DB
	QueryTimeout time.Duration
}

func (r FacetRepository) timeout() time.Duration {
	if r.QueryTimeout > 0 {
		return r.QueryTimeout
	}
	return 15 * time.Second
}

// Facets computes grouped counts per filter dimension. Each dimension's
// counts are taken with every *other* active filter applied, so picking a
// value never shows the user an empty result they were not warned about.
// The derived category filter is not pushable and is left out of the facet
// queries entirely.
func (r FacetRepository) Facets(ctx context.Context, c query.FilterCriteria) (models.FacetSet, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout())
	defer cancel()

	var set models.FacetSet
	var err error

	if set.Sucursales, err = r.groupedCounts(ctx, criteriaWithout(c, "sucursal"),
		`"Compañía"`, `ORDER BY count DESC, "Compañía"`); err != nil {
		return set, err
	}
	if set.Puestos, err = r.groupedCounts(ctx, criteriaWithout(c, "puesto"),
		`"Puesto"`, `ORDER BY count DESC, "Puesto"`); err != nil {
		return set, err
	}

	estados, err := r.groupedCounts(ctx, criteriaWithout(c, "status"),
		`"Status"`, `ORDER BY count DESC`)
	if err != nil {
		return set, err
	}
	for i := range estados {
		estados[i].Value = StatusLabel(estados[i].Value)
	}
	set.Estados = estados

	if set.Periodos, err = r.groupedCounts(ctx, criteriaWithout(c, "period"),
		`TO_CHAR(cveper, 'YYYY-MM-DD')`, `ORDER BY TO_CHAR(cveper, 'YYYY-MM-DD') DESC`); err != nil {
		return set, err
	}

	if set.Categorias, err = r.categoryCounts(ctx, c); err != nil {
		return set, err
	}

	return set, nil
}

// groupedCounts runs one `SELECT <expr>, COUNT(*) ... GROUP BY <expr>`
// facet query. expr comes from fixed call sites, never from the request.
func (r FacetRepository) groupedCounts(ctx context.Context, c query.FilterCriteria, expr, order string) ([]models.FacetValue, error) {
	where, args := query.BuildFilterSpec(c).Render(1)

	q := `SELECT ` + expr + ` AS value, COUNT(*) AS count FROM ` + payrollTable +
		` WHERE 1=1` + where + ` AND ` + expr + ` IS NOT NULL GROUP BY ` + expr + ` ` + order

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, domain.DataAccessError{Op: "facet counts", Err: err}
	}
	defer rows.Close()

	out := []models.FacetValue{}
	for rows.Next() {
		var fv models.FacetValue
		if err := rows.Scan(&fv.Value, &fv.Count); err != nil {
			return nil, domain.DataAccessError{Op: "scan facet row", Err: err}
		}
		out = append(out, fv)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.DataAccessError{Op: "iterate facet rows", Err: err}
	}
	return out, nil
}

// categoryCounts folds the distinct-position counts through the classifier
// and aggregates per category label. Only labels with at least one row are
// returned, in classifier declaration order with the uncategorized bucket
// last.
func (r FacetRepository) categoryCounts(ctx context.Context, c query.FilterCriteria) ([]models.FacetValue, error) {
	puestos, err := r.groupedCounts(ctx, criteriaWithout(c, "categoria"), `"Puesto"`, ``)
	if err != nil {
		return nil, err
	}

	totals := map[string]int{}
	for _, p := range puestos {
		totals[category.Classify(p.Value)] += p.Count
	}

	out := []models.FacetValue{}
	for _, label := range append(category.Labels(), category.Uncategorized) {
		if count := totals[label]; count > 0 {
			out = append(out, models.FacetValue{Value: label, Count: count})
		}
	}
	return out, nil
}

// ListPeriods returns every distinct period with its row count, newest
// first, unfiltered. Feeds the period picker.
func (r FacetRepository) ListPeriods(ctx context.Context) ([]models.FacetValue, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout())
	defer cancel()

	return r.groupedCounts(ctx, query.FilterCriteria{},
		`TO_CHAR(cveper, 'YYYY-MM-DD')`, `ORDER BY TO_CHAR(cveper, 'YYYY-MM-DD') DESC`)
}

// UniqueCount counts distinct employees (CURPs) under the pushable filters,
// with a gender split read from the CURP gender digit. The derived category
// filter cannot be pushed into a DISTINCT aggregate and is ignored here.
func (r FacetRepository) UniqueCount(ctx context.Context, c query.FilterCriteria) (models.UniqueCount, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout())
	defer cancel()

	c.Categoria = ""
	where, args := query.BuildFilterSpec(c).Render(1)

	q := `SELECT
		COUNT(DISTINCT "CURP"),
		COUNT(DISTINCT CASE WHEN SUBSTRING("CURP", 11, 1) = 'H' THEN "CURP" END),
		COUNT(DISTINCT CASE WHEN SUBSTRING("CURP", 11, 1) = 'M' THEN "CURP" END)
	FROM ` + payrollTable + `
	WHERE 1=1 AND "CURP" IS NOT NULL AND "CURP" != '' AND LENGTH("CURP") >= 11` + where

	var uc models.UniqueCount
	if err := r.DB.QueryRowContext(ctx, q, args...).Scan(&uc.UniqueCurps, &uc.UniqueMales, &uc.UniqueFemales); err != nil {
		return uc, domain.DataAccessError{Op: "count unique curps", Err: err}
	}
	return uc, nil
}

func criteriaWithout(c query.FilterCriteria, dim string) query.FilterCriteria {
	switch dim {
	case "sucursal":
		c.Sucursal = ""
	case "puesto":
		c.Puesto = ""
	case "status":
		c.Status = ""
	case "period":
		c.Period = ""
	}
	c.Categoria = ""
	return c
}
