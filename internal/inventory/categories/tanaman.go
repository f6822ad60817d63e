package categories

import "github.com/muhryhan/be-aset-dlh/internal/inventory/registry"

var Tanaman = registry.Definition{
	Resource:  "tanaman",
	Table:     "tanaman",
	KeyColumn: "kode_barang",
	Columns: []registry.Column{
		{Name: "gambar", Label: "Foto", Kind: registry.KindFile},
		{Name: "kode_barang", Label: "Kode Barang", Kind: registry.KindText, Required: true, Search: true},
		{Name: "nama", Label: "Nama", Kind: registry.KindText, Required: true, Search: true},
		{Name: "jenis", Label: "Jenis", Kind: registry.KindText, Required: true, Search: true},
		{Name: "stok", Label: "Stok", Kind: registry.KindInt},
		{Name: "keterangan", Label: "Keterangan", Kind: registry.KindText},
	},
}

// Stock movements for the nursery. They share the generic engine; the
// parent plant id is just another required column, and the per-plant
// history pages list all movements through /{resource}/tanaman/:id.
var TanamanMasuk = registry.Definition{
	Resource:   "tanamanmasuk",
	Table:      "tanamanmasuk",
	KeyColumn:  "id_tanaman",
	ParentPath: "tanaman",
	Columns: []registry.Column{
		{Name: "id_tanaman", Label: "ID Tanaman", Kind: registry.KindInt, Required: true},
		{Name: "tanggal", Label: "Tanggal", Kind: registry.KindDate, Required: true},
		{Name: "jumlah", Label: "Jumlah", Kind: registry.KindInt, Required: true},
		{Name: "asal", Label: "Asal", Kind: registry.KindText, Search: true},
	},
}

var TanamanKeluar = registry.Definition{
	Resource:   "tanamankeluar",
	Table:      "tanamankeluar",
	KeyColumn:  "id_tanaman",
	ParentPath: "tanaman",
	Columns: []registry.Column{
		{Name: "id_tanaman", Label: "ID Tanaman", Kind: registry.KindInt, Required: true},
		{Name: "tanggal", Label: "Tanggal", Kind: registry.KindDate, Required: true},
		{Name: "jumlah", Label: "Jumlah", Kind: registry.KindInt, Required: true},
		{Name: "tujuan", Label: "Tujuan", Kind: registry.KindText, Search: true},
	},
}
