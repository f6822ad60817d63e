package models

// Periodic-service ("servis berkala") checklists. One fixed-shape row per
// asset, seeded when the asset is registered and updated in place afterwards.

type SerberKendaraan struct {
	ID             int    `json:"id_serberkendaraan" db:"id_serberkendaraan" goqu:"skipinsert,skipupdate"`
	NoPolisi       string `json:"no_polisi" db:"no_polisi"`
	OliMesin       Date   `json:"oli_mesin" db:"oli_mesin"`
	FilterOliMesin Date   `json:"filter_oli_mesin" db:"filter_oli_mesin"`
	OliGardan      Date   `json:"oli_gardan" db:"oli_gardan"`
	OliTransmisi   Date   `json:"oli_transmisi" db:"oli_transmisi"`
	Ban            Date   `json:"ban" db:"ban"`
}

type SerberAlatBerat struct {
	ID             int    `json:"id_serberalatberat" db:"id_serberalatberat" goqu:"skipinsert,skipupdate"`
	NoRegistrasi   string `json:"no_registrasi" db:"no_registrasi"`
	OliMesin       Date   `json:"oli_mesin" db:"oli_mesin"`
	FilterOliMesin Date   `json:"filter_oli_mesin" db:"filter_oli_mesin"`
	OliHidrolik    Date   `json:"oli_hidrolik" db:"oli_hidrolik"`
	Ban            Date   `json:"ban" db:"ban"`
}

type SerberAlatKerja struct {
	ID           int    `json:"id_serberalatkerja" db:"id_serberalatkerja" goqu:"skipinsert,skipupdate"`
	NoRegistrasi string `json:"no_registrasi" db:"no_registrasi"`
	OliMesin     Date   `json:"oli_mesin" db:"oli_mesin"`
	FilterUdara  Date   `json:"filter_udara" db:"filter_udara"`
}

type SerberAC struct {
	ID           int    `json:"id_serberac" db:"id_serberac" goqu:"skipinsert,skipupdate"`
	NoRegistrasi string `json:"no_registrasi" db:"no_registrasi"`
	Cuci         Date   `json:"cuci" db:"cuci"`
}
