package models

type Medicine struct {
	MedicineID           string  `json:"medicine_id"`
	Name                 string  `json:"name"`
	GenericName          string  `json:"generic_name"`
	Manufacturer         string  `json:"manufacturer"`
	Price                float64 `json:"price"`
	Category             string  `json:"category"`
	PrescriptionRequired bool    `json:"prescription_required"`
	Stock                int     `json:"stock"`
}
