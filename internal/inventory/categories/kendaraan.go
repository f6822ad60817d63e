package categories

import "github.com/muhryhan/be-aset-dlh/internal/inventory/registry"

// Kendaraan is the service-vehicle category. The plate number doubles as
// the QR content, so scanning a windshield sticker resolves the periodic
// service checklist.
var Kendaraan = registry.Definition{
	Resource:  "kendaraan",
	Table:     "kendaraan",
	KeyColumn: "no_polisi",
	QRCode:    true,
	Columns: []registry.Column{
		{Name: "gambar", Label: "Foto", Kind: registry.KindFile},
		{Name: "kode_barang", Label: "Kode Barang", Kind: registry.KindText, Required: true, Search: true},
		{Name: "merek", Label: "Merek", Kind: registry.KindText, Required: true, Search: true},
		{Name: "no_polisi", Label: "No Polisi", Kind: registry.KindText, Required: true, Search: true},
		{Name: "no_mesin", Label: "No Mesin", Kind: registry.KindText},
		{Name: "no_rangka", Label: "No Rangka", Kind: registry.KindText},
		{Name: "warna", Label: "Warna", Kind: registry.KindText, Search: true},
		{Name: "harga_pembelian", Label: "Harga Pembelian", Kind: registry.KindMoney, Required: true},
		{Name: "tahun_pembuatan", Label: "Tahun Pembuatan", Kind: registry.KindInt, Required: true, Search: true},
		{Name: "kategori", Label: "Kategori", Kind: registry.KindText, Required: true, Search: true},
		{Name: "pajak", Label: "Pajak", Kind: registry.KindDate},
		{Name: "pemegang", Label: "Pemegang", Kind: registry.KindText, Search: true},
		{Name: "nik", Label: "NIK", Kind: registry.KindInt, Search: true},
		{Name: "penggunaan", Label: "Penggunaan", Kind: registry.KindText, Search: true},
		{Name: "kondisi", Label: "Kondisi", Kind: registry.KindText, Search: true},
	},
}
