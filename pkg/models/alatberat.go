package models

// AlatBerat is a heavy-equipment unit (excavators, compactors, dump trucks).
type AlatBerat struct {
	ID             int    `json:"id_alatberat" db:"id_alatberat" form:"-" goqu:"skipinsert,skipupdate"`
	QRCode         string `json:"qrcode" db:"qrcode" form:"-"`
	Gambar         string `json:"gambar" db:"gambar" form:"-"`
	KodeBarang     string `json:"kode_barang" db:"kode_barang" form:"kode_barang"`
	Merek          string `json:"merek" db:"merek" form:"merek"`
	NoRegistrasi   string `json:"no_registrasi" db:"no_registrasi" form:"no_registrasi"`
	NoMesin        string `json:"no_mesin" db:"no_mesin" form:"no_mesin"`
	NoRangka       string `json:"no_rangka" db:"no_rangka" form:"no_rangka"`
	Warna          string `json:"warna" db:"warna" form:"warna"`
	HargaPembelian int64  `json:"harga_pembelian" db:"harga_pembelian" form:"harga_pembelian"`
	TahunPembuatan int    `json:"tahun_pembuatan" db:"tahun_pembuatan" form:"tahun_pembuatan"`
	Kategori       string `json:"kategori" db:"kategori" form:"kategori"`
	Pajak          Date   `json:"pajak" db:"pajak" form:"pajak"`
	Penggunaan     string `json:"penggunaan" db:"penggunaan" form:"penggunaan"`
	Kondisi        string `json:"kondisi" db:"kondisi" form:"kondisi"`
}

func (a *AlatBerat) CreateLogView() AuditLog {
	return AuditLog{ResourceID: a.ID, ResourceType: "alatberat"}
}
