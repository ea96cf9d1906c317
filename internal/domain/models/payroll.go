package models

// PayrollRecord is the read-only projection of one row of the legacy
// historico_nominas_gsau table. The engine never writes it.
type PayrollRecord struct {
	RFC               string  `json:"rfc"`
	CURP              string  `json:"curp"`
	Nombre            string  `json:"nombre"`
	Puesto            string  `json:"puesto"`
	Sucursal          string  `json:"sucursal"`
	Periodo           string  `json:"periodo"`
	Sueldo            float64 `json:"sueldo"`
	Comisiones        float64 `json:"comisiones"`
	TotalPercepciones float64 `json:"totalPercepciones"`
	TotalDeducciones  float64 `json:"totalDeducciones"`
	Status            string  `json:"status"`
	Estado            string  `json:"estado"`
	Categoria         string  `json:"categoria"`
}

// Pagination is the metadata block of every list response. Truncated is set
// only when the derived-filter path hit its candidate cap, meaning Total is
// a lower bound rather than an exact count.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	Truncated  bool `json:"truncated,omitempty"`
}

// PageResult is one page of matching records plus the filter-wide total.
type PageResult struct {
	Items     []PayrollRecord
	Total     int
	Truncated bool
}

// FacetValue is one grouped-count entry of a filter dimension.
type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FacetSet carries the selectable values with cardinality for every filter
// dimension of the dashboard.
type FacetSet struct {
	Sucursales []FacetValue `json:"sucursales"`
	Puestos    []FacetValue `json:"puestos"`
	Estados    []FacetValue `json:"estados"`
	Categorias []FacetValue `json:"categorias"`
	Periodos   []FacetValue `json:"periodos"`
}

// UniqueCount reports distinct employees under the active filters. The
// gender split comes from the CURP gender digit (position 11, H/M).
type UniqueCount struct {
	UniqueCurps   int `json:"uniqueCurpCount"`
	UniqueMales   int `json:"uniqueMaleCount"`
	UniqueFemales int `json:"uniqueFemaleCount"`
}
