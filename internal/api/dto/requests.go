package dto

// UpdateUserRequest mutates editable profile fields.
type UpdateUserRequest struct {
	Email       string  `json:"email" validate:"omitempty,email"`
	Firstname   string  `json:"firstname"`
	Address     *string `json:"address"`
	CompanyName *string `json:"companyName"`
	GSTNumber   *string `json:"gstNumber"`
}

// CreatePartnerRequest accompanies the multipart logo on partner creation.
type CreatePartnerRequest struct {
	Name        string  `json:"name" form:"name" validate:"required"`
	Email       string  `json:"email" form:"email" validate:"required,email"`
	Phone       *string `json:"phone" form:"phone"`
	CompanyName *string `json:"companyName" form:"companyName"`
	Website     *string `json:"website" form:"website" validate:"omitempty,url"`
	PartnerType *string `json:"partnerType" form:"partnerType"`
	Description *string `json:"description" form:"description"`
}

// UpdatePartnerRequest mutates partner fields; empty strings are ignored.
type UpdatePartnerRequest struct {
	Name        string  `json:"name" form:"name"`
	Email       string  `json:"email" form:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" form:"phone"`
	CompanyName *string `json:"companyName" form:"companyName"`
	Website     *string `json:"website" form:"website" validate:"omitempty,url"`
	PartnerType *string `json:"partnerType" form:"partnerType"`
	Description *string `json:"description" form:"description"`
}

// UpdateStatusRequest changes a single row's status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// BulkIDsRequest targets a set of rows by id.
type BulkIDsRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1"`
}

// BulkStatusRequest changes status on a set of rows.
type BulkStatusRequest struct {
	IDs    []int64 `json:"ids" validate:"required,min=1"`
	Status string  `json:"status" validate:"required"`
}

// CreateCategoryRequest creates a category.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

// UpdateCategoryRequest mutates a category.
type UpdateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CreateCategoryTypeRequest creates a type under a category.
type CreateCategoryTypeRequest struct {
	Name        string  `json:"name" validate:"required"`
	CategoryID  int64   `json:"categoryId" validate:"required"`
	Description *string `json:"description"`
}

// UpdateCategoryTypeRequest mutates a category type.
type UpdateCategoryTypeRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CreateSubmissionRequest is the public lead-capture payload.
type CreateSubmissionRequest struct {
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone"`
	Type      string  `json:"type" validate:"required,oneof=demo contact get_in_touch"`
	Service   *string `json:"service"`
	Message   *string `json:"message"`
	UserID    *int64  `json:"userId"`
	ServiceID *int64  `json:"serviceId"`
}
