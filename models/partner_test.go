package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func activePartner(areas ...ServiceArea) *DeliveryPartner {
	return &DeliveryPartner{
		Name:         "Swift Movers",
		Status:       PartnerStatusActive,
		IsAvailable:  true,
		ServiceAreas: areas,
	}
}

func TestServiceAreaCovers(t *testing.T) {
	area := ServiceArea{City: "Mumbai", State: "Maharashtra", Pincodes: []string{"400001", "400002"}, Active: true}

	assert.True(t, area.Covers("Mumbai", "Maharashtra", ""))
	assert.True(t, area.Covers("mumbai", "maharashtra", ""), "city/state match is case-insensitive")
	assert.True(t, area.Covers("", "", "400002"), "pincode alone is enough")
	assert.True(t, area.Covers("Mumbai", "", ""), "missing state on the destination is not a mismatch")

	assert.False(t, area.Covers("Pune", "Maharashtra", ""))
	assert.False(t, area.Covers("Mumbai", "Karnataka", ""))
	assert.False(t, area.Covers("", "", "560001"))
}

func TestInactiveAreaNeverCovers(t *testing.T) {
	area := ServiceArea{City: "Mumbai", Pincodes: []string{"400001"}, Active: false}
	assert.False(t, area.Covers("Mumbai", "", ""))
	assert.False(t, area.Covers("", "", "400001"))
}

func TestServiceable(t *testing.T) {
	p := activePartner(
		ServiceArea{City: "Mumbai", State: "Maharashtra", Active: true},
		ServiceArea{City: "Pune", State: "Maharashtra", Active: true},
	)

	assert.True(t, p.Serviceable("Pune", "Maharashtra", ""))
	assert.False(t, p.Serviceable("Nagpur", "Maharashtra", ""))
}

func TestServiceableGatedByStatusAndAvailability(t *testing.T) {
	p := activePartner(ServiceArea{City: "Mumbai", Active: true})

	p.IsAvailable = false
	assert.False(t, p.Serviceable("Mumbai", "", ""))

	p.IsAvailable = true
	p.Status = PartnerStatusSuspended
	assert.False(t, p.Serviceable("Mumbai", "", ""))

	p.Status = PartnerStatusPendingApproval
	assert.False(t, p.Serviceable("Mumbai", "", ""))
}

func TestPartnerStatusValid(t *testing.T) {
	assert.True(t, PartnerStatusActive.Valid())
	assert.True(t, PartnerStatusPendingApproval.Valid())
	assert.False(t, PartnerStatus("archived").Valid())
}
