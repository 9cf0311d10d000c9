package domain

import "time"

// PartnerStatus enumerates the partner approval workflow.
type PartnerStatus string

const (
	PartnerStatusPending  PartnerStatus = "pending"
	PartnerStatusApproved PartnerStatus = "approved"
	PartnerStatusRejected PartnerStatus = "rejected"
)

// ValidPartnerStatus reports whether s is a member of the closed status set.
func ValidPartnerStatus(s string) bool {
	switch PartnerStatus(s) {
	case PartnerStatusPending, PartnerStatusApproved, PartnerStatusRejected:
		return true
	}
	return false
}

// Partner is a reseller partner listed on the public site once approved.
type Partner struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       *string       `json:"phone"`
	Company     *string       `json:"companyName"`
	LogoURL     *string       `json:"logo"`
	Website     *string       `json:"website"`
	Description *string       `json:"description"`
	Status      PartnerStatus `json:"status"`
	PartnerType *string       `json:"partnerType"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
