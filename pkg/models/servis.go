package models

// Servis is a one-off workshop service record. It references its parent asset
// through the registration string, never the numeric id, so the same table
// serves every asset category.
type Servis struct {
	ID           int        `json:"id_servis" db:"id_servis" form:"-" goqu:"skipinsert,skipupdate"`
	NoRegistrasi string     `json:"no_registrasi" db:"no_registrasi" form:"no_registrasi"`
	Tanggal      Date       `json:"tanggal" db:"tanggal" form:"tanggal"`
	NamaBengkel  string     `json:"nama_bengkel" db:"nama_bengkel" form:"nama_bengkel"`
	BiayaServis  int64      `json:"biaya_servis" db:"biaya_servis" form:"biaya_servis"`
	Gambar       string     `json:"gambar" db:"gambar" form:"-"`
	Onderdil     []Onderdil `json:"onderdil" db:"-" form:"-"`
}

func (s *Servis) CreateLogView() AuditLog {
	return AuditLog{ResourceID: s.ID, ResourceType: "servis"}
}

// Onderdil is one "part used" line item of a service record. Parts flagged
// berkala feed the periodic-service checklist: the part name, normalized to
// snake_case, selects the checklist column that gets the service date.
type Onderdil struct {
	ID           int    `json:"id_onderdil" db:"id_onderdil" goqu:"skipinsert,skipupdate"`
	ServisID     int    `json:"-" db:"id_servis"`
	NamaOnderdil string `json:"nama_onderdil" db:"nama_onderdil"`
	Jumlah       int    `json:"jumlah" db:"jumlah"`
	Harga        int64  `json:"harga" db:"harga"`
	IsBerkala    bool   `json:"isBerkala" db:"is_berkala"`
}
