package models

import (
	"strings"
	"time"
)

type PartnerStatus string

const (
	PartnerStatusPendingApproval PartnerStatus = "pending_approval"
	PartnerStatusActive          PartnerStatus = "active"
	PartnerStatusInactive        PartnerStatus = "inactive"
	PartnerStatusSuspended       PartnerStatus = "suspended"
)

// Valid reports whether s is one of the enumerated partner statuses.
func (s PartnerStatus) Valid() bool {
	switch s {
	case PartnerStatusPendingApproval, PartnerStatusActive, PartnerStatusInactive, PartnerStatusSuspended:
		return true
	}
	return false
}

type DeliveryPartner struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	Name            string           `gorm:"not null" json:"name"`
	CompanyName     string           `json:"company_name"`
	Email           string           `gorm:"uniqueIndex" json:"email"`
	Phone           string           `json:"phone"`
	Address         Address          `gorm:"embedded;embeddedPrefix:addr_" json:"address"`
	ServiceAreas    []ServiceArea    `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE" json:"service_areas"`
	Services        []PartnerService `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE" json:"services"`
	VehicleType     string           `json:"vehicle_type"`
	Capacity        int              `json:"capacity"` // parcels per day
	CommissionRate  float64          `json:"commission_rate"`
	Status          PartnerStatus    `gorm:"type:VARCHAR(20);default:'pending_approval'" json:"status"`
	IsAvailable     bool             `gorm:"default:true" json:"is_available"`
	IsVerified      bool             `gorm:"default:false" json:"is_verified"`
	Rating          float64          `json:"rating"`
	TotalDeliveries int              `json:"total_deliveries"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ServiceArea is one geographic coverage declaration of a partner.
type ServiceArea struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	PartnerID uint     `gorm:"index" json:"partner_id"`
	City      string   `gorm:"not null" json:"city"`
	State     string   `json:"state"`
	Pincodes  []string `gorm:"serializer:json" json:"pincodes"`
	Active    bool     `gorm:"default:true" json:"active"`
}

// PartnerService is one offered service with its rate.
type PartnerService struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	PartnerID uint    `gorm:"index" json:"partner_id"`
	Name      string  `gorm:"not null" json:"name"`
	Rate      float64 `json:"rate"`
}

// Covers reports whether the area serves the given destination. A destination
// matches on city+state (case-insensitive, state optional on either side) or
// when the pincode appears in the area's pincode list.
func (a *ServiceArea) Covers(city, state, pincode string) bool {
	if !a.Active {
		return false
	}
	if pincode != "" {
		for _, pc := range a.Pincodes {
			if pc == pincode {
				return true
			}
		}
	}
	if city == "" || !strings.EqualFold(a.City, city) {
		return false
	}
	if state != "" && a.State != "" && !strings.EqualFold(a.State, state) {
		return false
	}
	return true
}

// Serviceable reports whether the partner can take a parcel for the given
// destination: the partner must be active and available with at least one
// covering service area.
func (p *DeliveryPartner) Serviceable(city, state, pincode string) bool {
	if p.Status != PartnerStatusActive || !p.IsAvailable {
		return false
	}
	for i := range p.ServiceAreas {
		if p.ServiceAreas[i].Covers(city, state, pincode) {
			return true
		}
	}
	return false
}
