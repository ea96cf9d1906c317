// Package category derives the job category of a payroll row from its
// free-text position title. The category is not stored in the legacy table;
// it exists only at read time.
package category

import "strings"

// Uncategorized is returned for empty or unmatched position titles.
const Uncategorized = "Sin Categorizar"

// mapping entries are evaluated in order; the first label whose keyword list
// has a substring match against the upper-cased position wins. Gerencia is
// checked before Ventas so "GERENTE DE VENTAS" lands on the rank, not the
// department embedded in the title.
type entry struct {
	Label    string
	Keywords []string
}

var mapping = []entry{
	{"Gerencia", []string{
		"GERENTE", "DIRECTOR", "JEFE", "SUBDIRECTOR", "SUBGERENTE",
	}},
	{"Administrativo", []string{
		"ADMINISTRACION", "ADMINISTRATIVO", "ADMVO", "ADMINISTRADOR",
		"COORDINADOR", "SUPERVISOR", "SECRETARIA", "ASISTENTE",
		"FACTURACION", "CONTABILIDAD", "FINANZAS", "RECURSOS HUMANOS",
	}},
	{"Ventas", []string{
		"VENTAS", "ASESOR", "VENDEDOR", "BDC", "COMERCIAL",
		"AUTOFINANCIAMIENTO", "FLOTILLAS", "POSTVENTA",
	}},
	{"Técnico y Taller", []string{
		"TECNICO", "MECANICO", "HOJALATERO", "PINTOR", "ALINEADOR",
		"ARMADOR", "SOLDADOR", "LAVADOR", "TALLER", "ELECTRICO",
	}},
	{"Refacciones y Almacén", []string{
		"ALMACENISTA", "REFACCIONES", "PARTES", "INVENTARIO", "ALMACEN",
	}},
	{"Garantías y Seguros", []string{
		"GARANTIAS", "GARANTIA", "SEGUROS", "SEGURO", "SINIESTROS",
	}},
	{"Servicio", []string{
		"SERVICIO", "RECEPCION", "ATENCION", "CLIENTE",
	}},
	{"Marketing y CRM", []string{
		"MARKETING", "CRM", "PUBLICIDAD", "MERCADOTECNIA", "EVENTOS",
	}},
	{"Apoyo Operativo", []string{
		"APOYO", "AUXILIAR", "MENSAJERO", "CHOFER", "INTENDENCIA",
		"LIMPIEZA", "VIGILANCIA", "SEGURIDAD", "MANTENIMIENTO",
	}},
}

// Classify maps a position title to its category label. Pure function over
// the static mapping; safe for concurrent use.
func Classify(puesto string) string {
	upper := strings.ToUpper(strings.TrimSpace(puesto))
	if upper == "" {
		return Uncategorized
	}

	for _, e := range mapping {
		for _, kw := range e.Keywords {
			if strings.Contains(upper, kw) {
				return e.Label
			}
		}
	}
	return Uncategorized
}

// Labels returns every category label in match order, without Uncategorized.
func Labels() []string {
	out := make([]string, 0, len(mapping))
	for _, e := range mapping {
		out = append(out, e.Label)
	}
	return out
}

// IsKnown reports whether label is a classifier output, including
// Uncategorized. Unknown labels are legal filter values that simply match
// no rows.
func IsKnown(label string) bool {
	if label == Uncategorized {
		return true
	}
	for _, e := range mapping {
		if e.Label == label {
			return true
		}
	}
	return false
}
