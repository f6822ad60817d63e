package categories

import "github.com/muhryhan/be-aset-dlh/internal/inventory/registry"

// Tanah parcels carry no QR code: the certificate number is the key and
// parcels get no periodic service.
var Tanah = registry.Definition{
	Resource:  "tanah",
	Table:     "tanah",
	KeyColumn: "nomor_sertifikat",
	Columns: []registry.Column{
		{Name: "gambar", Label: "Foto", Kind: registry.KindFile},
		{Name: "nama_barang", Label: "Nama Barang", Kind: registry.KindText, Required: true, Search: true},
		{Name: "peruntukan", Label: "Peruntukan", Kind: registry.KindText, Required: true, Search: true},
		{Name: "alamat", Label: "Alamat", Kind: registry.KindText, Required: true, Search: true},
		{Name: "luas", Label: "Luas (m2)", Kind: registry.KindInt, Required: true},
		{Name: "tahun_pengadaan", Label: "Tahun Pengadaan", Kind: registry.KindInt, Required: true, Search: true},
		{Name: "hak", Label: "Hak", Kind: registry.KindText, Search: true},
		{Name: "tanggal_sertifikat", Label: "Tanggal Sertifikat", Kind: registry.KindDate},
		{Name: "nomor_sertifikat", Label: "Nomor Sertifikat", Kind: registry.KindText, Required: true, Search: true},
		{Name: "status_sertifikat", Label: "Status Sertifikat", Kind: registry.KindText, Search: true},
		{Name: "asal", Label: "Asal", Kind: registry.KindText, Search: true},
		{Name: "harga", Label: "Harga", Kind: registry.KindMoney},
	},
}
