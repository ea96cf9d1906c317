// Package query turns raw dashboard request parameters into parameterized
// SQL fragments against the historico_nominas_gsau table. Every public key
// resolves through a static allow-list; nothing caller-supplied reaches the
// SQL text.
package query

import "strings"

// Column is one allow-listed entry of the public-key → storage mapping.
// Derived columns have no storage expression and can never be pushed into
// SQL or used for sorting.
type Column struct {
	Expr       string
	Filterable bool
	Sortable   bool
	Derived    bool
}

const (
	colNombre   = `"Nombre completo"`
	colCURP     = `"CURP"`
	colRFC      = `"RFC"`
	colPuesto   = `"Puesto"`
	colSucursal = `"Compañía"`
	colStatus   = `"Status"`
	colPeriodo  = `cveper`
	colSueldo   = `COALESCE(" SUELDO CLIENTE ", 0)`
	colComision = `(COALESCE(" COMISIONES CLIENTE ", 0) + COALESCE(" COMISIONES FACTURADAS ", 0))`
	colPercep   = `COALESCE(" TOTAL DE PERCEPCIONES ", 0)`
	colDeducc   = `COALESCE(" TOTAL DEDUCCIONES ", 0)`
)

// columns keys are lower-case; several legacy frontend aliases map onto the
// same storage column.
var columns = map[string]Column{
	"nombre":            {Expr: colNombre, Filterable: true, Sortable: true},
	"name":              {Expr: colNombre, Filterable: true, Sortable: true},
	"curp":              {Expr: colCURP, Filterable: true, Sortable: true},
	"rfc":               {Expr: colRFC, Filterable: true, Sortable: true},
	"puesto":            {Expr: colPuesto, Filterable: true, Sortable: true},
	"sucursal":          {Expr: colSucursal, Filterable: true, Sortable: true},
	"compania":          {Expr: colSucursal, Filterable: true, Sortable: true},
	"status":            {Expr: colStatus, Filterable: true, Sortable: true},
	"estado":            {Expr: colStatus, Filterable: true, Sortable: true},
	"cveper":            {Expr: colPeriodo, Filterable: true, Sortable: true},
	"periodo":           {Expr: colPeriodo, Filterable: true, Sortable: true},
	"fecha":             {Expr: colPeriodo, Filterable: true, Sortable: true},
	"mes":               {Expr: colPeriodo, Filterable: true, Sortable: true},
	"sueldo":            {Expr: colSueldo, Sortable: true},
	"salario":           {Expr: colSueldo, Sortable: true},
	"salary":            {Expr: colSueldo, Sortable: true},
	"comisiones":        {Expr: colComision, Sortable: true},
	"commissions":       {Expr: colComision, Sortable: true},
	"totalpercepciones": {Expr: colPercep, Sortable: true},
	"totaldeducciones":  {Expr: colDeducc, Sortable: true},
	"categoria":         {Filterable: true, Derived: true},
	"category":          {Filterable: true, Derived: true},
}

// ResolveColumn looks up a caller-supplied key in the allow-list. Unknown
// keys return ok=false; callers fall back to default behavior, never to a
// raw passthrough.
func ResolveColumn(key string) (Column, bool) {
	col, ok := columns[strings.ToLower(strings.TrimSpace(key))]
	return col, ok
}
