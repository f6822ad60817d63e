package models

// AC is an installed air-conditioning unit.
type AC struct {
	ID             int    `json:"id_ac" db:"id_ac" form:"-" goqu:"skipinsert,skipupdate"`
	QRCode         string `json:"qrcode" db:"qrcode" form:"-"`
	Gambar         string `json:"gambar" db:"gambar" form:"-"`
	KodeBarang     string `json:"kode_barang" db:"kode_barang" form:"kode_barang"`
	NamaBarang     string `json:"nama_barang" db:"nama_barang" form:"nama_barang"`
	Merek          string `json:"merek" db:"merek" form:"merek"`
	NoRegistrasi   string `json:"no_registrasi" db:"no_registrasi" form:"no_registrasi"`
	NoSerial       string `json:"no_serial" db:"no_serial" form:"no_serial"`
	Ukuran         string `json:"ukuran" db:"ukuran" form:"ukuran"`
	Ruangan        string `json:"ruangan" db:"ruangan" form:"ruangan"`
	Asal           string `json:"asal" db:"asal" form:"asal"`
	TahunPembelian int    `json:"tahun_pembelian" db:"tahun_pembelian" form:"tahun_pembelian"`
	HargaPembelian int64  `json:"harga_pembelian" db:"harga_pembelian" form:"harga_pembelian"`
	Kondisi        string `json:"kondisi" db:"kondisi" form:"kondisi"`
	Keterangan     string `json:"keterangan" db:"keterangan" form:"keterangan"`
}

func (a *AC) CreateLogView() AuditLog {
	return AuditLog{ResourceID: a.ID, ResourceType: "ac"}
}
