package servicing

import "github.com/muhryhan/be-aset-dlh/internal/inventory/registry"

// Periodic-service checklists ride the same generic engine as the asset
// categories: flat rows, id_-prefixed primary key, registration key column.
// Their date columns are the targets of berkala-flagged service parts.

var SerberKendaraan = registry.Definition{
	Resource:  "servisberkalakendaraan",
	Table:     "serberkendaraan",
	KeyColumn: "no_polisi",
	Columns: []registry.Column{
		{Name: "no_polisi", Label: "No Polisi", Kind: registry.KindText, Required: true, Search: true},
		{Name: "oli_mesin", Label: "Oli Mesin", Kind: registry.KindDate},
		{Name: "filter_oli_mesin", Label: "Filter Oli Mesin", Kind: registry.KindDate},
		{Name: "oli_gardan", Label: "Oli Gardan", Kind: registry.KindDate},
		{Name: "oli_transmisi", Label: "Oli Transmisi", Kind: registry.KindDate},
		{Name: "ban", Label: "Ban", Kind: registry.KindDate},
	},
}

var SerberAlatBerat = registry.Definition{
	Resource:  "servisberkalaalatberat",
	Table:     "serberalatberat",
	KeyColumn: "no_registrasi",
	Columns: []registry.Column{
		{Name: "no_registrasi", Label: "No Registrasi", Kind: registry.KindText, Required: true, Search: true},
		{Name: "oli_mesin", Label: "Oli Mesin", Kind: registry.KindDate},
		{Name: "filter_oli_mesin", Label: "Filter Oli Mesin", Kind: registry.KindDate},
		{Name: "oli_hidrolik", Label: "Oli Hidrolik", Kind: registry.KindDate},
		{Name: "ban", Label: "Ban", Kind: registry.KindDate},
	},
}

var SerberAlatKerja = registry.Definition{
	Resource:  "servisberkalaalatkerja",
	Table:     "serberalatkerja",
	KeyColumn: "no_registrasi",
	Columns: []registry.Column{
		{Name: "no_registrasi", Label: "No Registrasi", Kind: registry.KindText, Required: true, Search: true},
		{Name: "oli_mesin", Label: "Oli Mesin", Kind: registry.KindDate},
		{Name: "filter_udara", Label: "Filter Udara", Kind: registry.KindDate},
	},
}

var SerberAC = registry.Definition{
	Resource:  "servisberkalaac",
	Table:     "serberac",
	KeyColumn: "no_registrasi",
	Columns: []registry.Column{
		{Name: "no_registrasi", Label: "No Registrasi", Kind: registry.KindText, Required: true, Search: true},
		{Name: "cuci", Label: "Cuci", Kind: registry.KindDate},
	},
}

// All periodic definitions, in scan-lookup order.
var periodicDefinitions = []registry.Definition{
	SerberKendaraan,
	SerberAlatBerat,
	SerberAlatKerja,
	SerberAC,
}
