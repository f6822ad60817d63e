package models

// Tanah is a land parcel. Parcels carry a certificate instead of a QR code
// and are keyed by their certificate number.
type Tanah struct {
	ID                int    `json:"id_tanah" db:"id_tanah" form:"-" goqu:"skipinsert,skipupdate"`
	Gambar            string `json:"gambar" db:"gambar" form:"-"`
	NamaBarang        string `json:"nama_barang" db:"nama_barang" form:"nama_barang"`
	Peruntukan        string `json:"peruntukan" db:"peruntukan" form:"peruntukan"`
	Alamat            string `json:"alamat" db:"alamat" form:"alamat"`
	Luas              int64  `json:"luas" db:"luas" form:"luas"`
	TahunPengadaan    int    `json:"tahun_pengadaan" db:"tahun_pengadaan" form:"tahun_pengadaan"`
	Hak               string `json:"hak" db:"hak" form:"hak"`
	TanggalSertifikat Date   `json:"tanggal_sertifikat" db:"tanggal_sertifikat" form:"tanggal_sertifikat"`
	NomorSertifikat   string `json:"nomor_sertifikat" db:"nomor_sertifikat" form:"nomor_sertifikat"`
	StatusSertifikat  string `json:"status_sertifikat" db:"status_sertifikat" form:"status_sertifikat"`
	Asal              string `json:"asal" db:"asal" form:"asal"`
	Harga             int64  `json:"harga" db:"harga" form:"harga"`
}

func (t *Tanah) CreateLogView() AuditLog {
	return AuditLog{ResourceID: t.ID, ResourceType: "tanah"}
}
