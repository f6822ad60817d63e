package models

// Tanaman is a plant stock line (seedlings, ornamental plants).
type Tanaman struct {
	ID         int    `json:"id_tanaman" db:"id_tanaman" form:"-" goqu:"skipinsert,skipupdate"`
	Gambar     string `json:"gambar" db:"gambar" form:"-"`
	KodeBarang string `json:"kode_barang" db:"kode_barang" form:"kode_barang"`
	Nama       string `json:"nama" db:"nama" form:"nama"`
	Jenis      string `json:"jenis" db:"jenis" form:"jenis"`
	Stok       int    `json:"stok" db:"stok" form:"stok"`
	Keterangan string `json:"keterangan" db:"keterangan" form:"keterangan"`
}

func (t *Tanaman) CreateLogView() AuditLog {
	return AuditLog{ResourceID: t.ID, ResourceType: "tanaman"}
}

// TanamanMasuk records plants entering the nursery stock.
type TanamanMasuk struct {
	ID        int    `json:"id_tanamanmasuk" db:"id_tanamanmasuk" form:"-" goqu:"skipinsert,skipupdate"`
	TanamanID int    `json:"id_tanaman" db:"id_tanaman" form:"id_tanaman"`
	Tanggal   Date   `json:"tanggal" db:"tanggal" form:"tanggal"`
	Jumlah    int    `json:"jumlah" db:"jumlah" form:"jumlah"`
	Asal      string `json:"asal" db:"asal" form:"asal"`
}

func (t *TanamanMasuk) CreateLogView() AuditLog {
	return AuditLog{ResourceID: t.ID, ResourceType: "tanamanmasuk"}
}

// TanamanKeluar records plants distributed out of stock.
type TanamanKeluar struct {
	ID        int    `json:"id_tanamankeluar" db:"id_tanamankeluar" form:"-" goqu:"skipinsert,skipupdate"`
	TanamanID int    `json:"id_tanaman" db:"id_tanaman" form:"id_tanaman"`
	Tanggal   Date   `json:"tanggal" db:"tanggal" form:"tanggal"`
	Jumlah    int    `json:"jumlah" db:"jumlah" form:"jumlah"`
	Tujuan    string `json:"tujuan" db:"tujuan" form:"tujuan"`
}

func (t *TanamanKeluar) CreateLogView() AuditLog {
	return AuditLog{ResourceID: t.ID, ResourceType: "tanamankeluar"}
}
