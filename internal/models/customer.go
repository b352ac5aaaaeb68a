package models

import "time"

type Customer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:150;not null;index" json:"nome"`
	Phone        string    `gorm:"size:20" json:"telefone"`
	Address      string    `gorm:"size:255" json:"endereco"`
	Neighborhood string    `gorm:"size:100" json:"bairro"`
	City         string    `gorm:"size:100" json:"cidade"`
	State        string    `gorm:"size:2" json:"estado"`
	ZipCode      string    `gorm:"size:10" json:"cep"`
	Notes        string    `gorm:"type:text" json:"observacoes"`
	CreatedAt    time.Time `json:"criadoEm"`
	UpdatedAt    time.Time `json:"-"`
}

func (Customer) TableName() string {
	return "clientes"
}
