package request

// CreateCompanyRequest is the body of POST /api/company.
type CreateCompanyRequest struct {
	Name            string `json:"name" validate:"required,notblank,max=200"`
	BusinessType    string `json:"businessType" validate:"max=100"`
	EstablishedDate string `json:"establishedDate" validate:"omitempty,datetime=2006-01-02"`
	Representative  string `json:"representative" validate:"max=100"`
	Address         string `json:"address" validate:"max=500"`
	Phone           string `json:"phone" validate:"max=50"`
}

// UpdateCompanyRequest is the body of PUT /api/company/{uuid}. Nil fields are left unchanged.
type UpdateCompanyRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitnil,notblank,max=200"`
	BusinessType    *string `json:"businessType,omitempty" validate:"omitnil,max=100"`
	EstablishedDate *string `json:"establishedDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Representative  *string `json:"representative,omitempty" validate:"omitnil,max=100"`
	Address         *string `json:"address,omitempty" validate:"omitnil,max=500"`
	Phone           *string `json:"phone,omitempty" validate:"omitnil,max=50"`
}
