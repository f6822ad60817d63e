package models

// Kendaraan is a registered service vehicle. The no_polisi plate number is
// the unique registration key used by service lookups and the QR scanner.
type Kendaraan struct {
	ID              int    `json:"id_kendaraan" db:"id_kendaraan" form:"-" goqu:"skipinsert,skipupdate"`
	QRCode          string `json:"qrcode" db:"qrcode" form:"-"`
	Gambar          string `json:"gambar" db:"gambar" form:"-"`
	KodeBarang      string `json:"kode_barang" db:"kode_barang" form:"kode_barang"`
	Merek           string `json:"merek" db:"merek" form:"merek"`
	NoPolisi        string `json:"no_polisi" db:"no_polisi" form:"no_polisi"`
	NoMesin         string `json:"no_mesin" db:"no_mesin" form:"no_mesin"`
	NoRangka        string `json:"no_rangka" db:"no_rangka" form:"no_rangka"`
	Warna           string `json:"warna" db:"warna" form:"warna"`
	HargaPembelian  int64  `json:"harga_pembelian" db:"harga_pembelian" form:"harga_pembelian"`
	TahunPembuatan  int    `json:"tahun_pembuatan" db:"tahun_pembuatan" form:"tahun_pembuatan"`
	Kategori        string `json:"kategori" db:"kategori" form:"kategori"`
	Pajak           Date   `json:"pajak" db:"pajak" form:"pajak"`
	Pemegang        string `json:"pemegang" db:"pemegang" form:"pemegang"`
	NIK             int64  `json:"nik" db:"nik" form:"nik"`
	Penggunaan      string `json:"penggunaan" db:"penggunaan" form:"penggunaan"`
	Kondisi         string `json:"kondisi" db:"kondisi" form:"kondisi"`
}

func (k *Kendaraan) CreateLogView() AuditLog {
	return AuditLog{ResourceID: k.ID, ResourceType: "kendaraan"}
}
