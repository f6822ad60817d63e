package categories

import "github.com/muhryhan/be-aset-dlh/internal/inventory/registry"

var AlatBerat = registry.Definition{
	Resource:  "alatberat",
	Table:     "alatberat",
	KeyColumn: "no_registrasi",
	QRCode:    true,
	Columns: []registry.Column{
		{Name: "gambar", Label: "Foto", Kind: registry.KindFile},
		{Name: "kode_barang", Label: "Kode Barang", Kind: registry.KindText, Required: true, Search: true},
		{Name: "merek", Label: "Merek", Kind: registry.KindText, Required: true, Search: true},
		{Name: "no_registrasi", Label: "No Registrasi", Kind: registry.KindText, Required: true, Search: true},
		{Name: "no_mesin", Label: "No Mesin", Kind: registry.KindText},
		{Name: "no_rangka", Label: "No Rangka", Kind: registry.KindText},
		{Name: "warna", Label: "Warna", Kind: registry.KindText, Search: true},
		{Name: "harga_pembelian", Label: "Harga Pembelian", Kind: registry.KindMoney, Required: true},
		{Name: "tahun_pembuatan", Label: "Tahun Pembuatan", Kind: registry.KindInt, Required: true, Search: true},
		{Name: "kategori", Label: "Kategori", Kind: registry.KindText, Required: true, Search: true},
		{Name: "pajak", Label: "Pajak", Kind: registry.KindDate},
		{Name: "penggunaan", Label: "Penggunaan", Kind: registry.KindText, Search: true},
		{Name: "kondisi", Label: "Kondisi", Kind: registry.KindText, Search: true},
	},
}
