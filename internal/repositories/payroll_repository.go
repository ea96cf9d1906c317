package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"numerica-backend/internal/category"
	"numerica-backend/internal/domain"
	"numerica-backend/internal/domain/models"
	"numerica-backend/internal/query"
)

const payrollTable = "historico_nominas_gsau"

// selectCols projects the row shape the dashboard consumes. Numeric legacy
// columns arrive padded with spaces in their names and nullable throughout.
const selectCols = `SELECT
	COALESCE("RFC", ''),
	COALESCE("CURP", ''),
	COALESCE("Nombre completo", ''),
	COALESCE("Puesto", ''),
	COALESCE("Compañía", ''),
	COALESCE(TO_CHAR(cveper, 'YYYY-MM-DD'), ''),
	COALESCE(" SUELDO CLIENTE ", 0),
	(COALESCE(" COMISIONES CLIENTE ", 0) + COALESCE(" COMISIONES FACTURADAS ", 0)),
	COALESCE(" TOTAL DE PERCEPCIONES ", 0),
	COALESCE(" TOTAL DEDUCCIONES ", 0),
	COALESCE("Status", '')
FROM ` + payrollTable + ` WHERE 1=1`

// PayrollRepository executes the paginated queries of the dashboard engine.
// It owns the two execution paths: direct SQL pagination, and the capped
// fetch-then-classify path used when the derived category filter is active.
type PayrollRepository struct {
	DB           *sql.DB
	QueryTimeout time.Duration
	CandidateCap int
}

func (r PayrollRepository) timeout() time.Duration {
	if r.QueryTimeout > 0 {
		return r.QueryTimeout
	}
	return 15 * time.Second
}

func (r PayrollRepository) cap() int {
	if r.CandidateCap > 0 {
		return r.CandidateCap
	}
	return 10000
}

// Fetch returns one page plus the filter-wide total. Offsets are computed
// from an already-clamped page/pageSize pair.
func (r PayrollRepository) Fetch(ctx context.Context, spec query.FilterSpec, sort query.SortSpec, page, pageSize int) (models.PageResult, error) {
	if spec.HasCategory() {
		return r.fetchClassified(ctx, spec, sort, page, pageSize)
	}
	return r.fetchDirect(ctx, spec, sort, page, pageSize)
}

// fetchDirect runs a count query and a data query over the same predicate
// set. No transaction spans the pair; a concurrent write between the two
// can skew total by a row, which the dashboard tolerates.
func (r PayrollRepository) fetchDirect(ctx context.Context, spec query.FilterSpec, sort query.SortSpec, page, pageSize int) (models.PageResult, error) {
	where, args := spec.Render(1)

	ctx, cancel := context.WithTimeout(ctx, r.timeout())
	defer cancel()

	var total int
	countQuery := `SELECT COUNT(*) FROM ` + payrollTable + ` WHERE 1=1` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return models.PageResult{}, domain.DataAccessError{Op: "count payroll rows", Err: err}
	}

	n := len(args) + 1
	dataQuery := selectCols + where + sort.OrderBy() +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", n, n+1)
	dataArgs := append(append([]any{}, args...), pageSize, (page-1)*pageSize)

	rows, err := r.DB.QueryContext(ctx, dataQuery, dataArgs...)
	if err != nil {
		return models.PageResult{}, domain.DataAccessError{Op: "fetch payroll page", Err: err}
	}
	defer rows.Close()

	items, err := scanRecords(rows)
	if err != nil {
		return models.PageResult{}, err
	}

	return models.PageResult{Items: items, Total: total}, nil
}

// fetchClassified handles the category filter, which has no stored column
// to push a predicate into. It pulls the ordered candidate set (bounded by
// the cap), classifies each position, and paginates the surviving rows in
// memory. Ordering happens in SQL, before classification, so in-category
// order matches the requested sort. Cost is O(candidate set) per request.
func (r PayrollRepository) fetchClassified(ctx context.Context, spec query.FilterSpec, sort query.SortSpec, page, pageSize int) (models.PageResult, error) {
	// A label the classifier can never produce matches zero rows; skip the
	// candidate fetch.
	if !category.IsKnown(spec.Category) {
		return models.PageResult{Items: []models.PayrollRecord{}}, nil
	}

	where, args := spec.Render(1)

	ctx, cancel := context.WithTimeout(ctx, r.timeout())
	defer cancel()

	// cap+1 so an overflowing candidate set is detected instead of being
	// silently under-counted.
	n := len(args) + 1
	dataQuery := selectCols + where + sort.OrderBy() + fmt.Sprintf(" LIMIT $%d", n)
	dataArgs := append(append([]any{}, args...), r.cap()+1)

	rows, err := r.DB.QueryContext(ctx, dataQuery, dataArgs...)
	if err != nil {
		return models.PageResult{}, domain.DataAccessError{Op: "fetch payroll candidates", Err: err}
	}
	defer rows.Close()

	candidates, err := scanRecords(rows)
	if err != nil {
		return models.PageResult{}, err
	}

	truncated := false
	if len(candidates) > r.cap() {
		candidates = candidates[:r.cap()]
		truncated = true
	}

	filtered := candidates[:0:0]
	for _, rec := range candidates {
		if rec.Categoria == spec.Category {
			filtered = append(filtered, rec)
		}
	}

	start := (page - 1) * pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return models.PageResult{
		Items:     filtered[start:end],
		Total:     len(filtered),
		Truncated: truncated,
	}, nil
}

func scanRecords(rows *sql.Rows) ([]models.PayrollRecord, error) {
	items := []models.PayrollRecord{}
	for rows.Next() {
		var rec models.PayrollRecord
		if err := rows.Scan(
			&rec.RFC,
			&rec.CURP,
			&rec.Nombre,
			&rec.Puesto,
			&rec.Sucursal,
			&rec.Periodo,
			&rec.Sueldo,
			&rec.Comisiones,
			&rec.TotalPercepciones,
			&rec.TotalDeducciones,
			&rec.Status,
		); err != nil {
			return nil, domain.DataAccessError{Op: "scan payroll row", Err: err}
		}
		rec.Estado = StatusLabel(rec.Status)
		rec.Categoria = category.Classify(rec.Puesto)
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.DataAccessError{Op: "iterate payroll rows", Err: err}
	}
	return items, nil
}

// StatusLabel expands the stored single-letter status codes for display.
func StatusLabel(code string) string {
	switch code {
	case "A":
		return "Activo"
	case "B":
		return "Baja"
	case "F":
		return "Finiquito"
	}
	return "N/A"
}
