package categories

import "github.com/muhryhan/be-aset-dlh/internal/inventory/registry"

var AC = registry.Definition{
	Resource:  "ac",
	Table:     "ac",
	KeyColumn: "no_registrasi",
	QRCode:    true,
	Columns: []registry.Column{
		{Name: "gambar", Label: "Foto", Kind: registry.KindFile},
		{Name: "kode_barang", Label: "Kode Barang", Kind: registry.KindText, Required: true, Search: true},
		{Name: "nama_barang", Label: "Nama Barang", Kind: registry.KindText, Required: true, Search: true},
		{Name: "merek", Label: "Merek", Kind: registry.KindText, Required: true, Search: true},
		{Name: "no_registrasi", Label: "No Registrasi", Kind: registry.KindText, Required: true, Search: true},
		{Name: "no_serial", Label: "No Serial", Kind: registry.KindText, Search: true},
		{Name: "ukuran", Label: "Ukuran", Kind: registry.KindText, Search: true},
		{Name: "ruangan", Label: "Ruangan", Kind: registry.KindText, Search: true},
		{Name: "asal", Label: "Asal", Kind: registry.KindText, Search: true},
		{Name: "tahun_pembelian", Label: "Tahun Pembelian", Kind: registry.KindInt, Required: true, Search: true},
		{Name: "harga_pembelian", Label: "Harga Pembelian", Kind: registry.KindMoney, Required: true},
		{Name: "kondisi", Label: "Kondisi", Kind: registry.KindText, Search: true},
		{Name: "keterangan", Label: "Keterangan", Kind: registry.KindText},
	},
}
