package models

// Member is a welfare-registered church member.
type Member struct {
	ID          int64  `json:"id,omitempty"`
	FullName    string `json:"full_name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required,min=10"`
	Gender      string `json:"gender" validate:"required"`
	Status      string `json:"status,omitempty"`
	Location    string `json:"location,omitempty"`
	DateJoined  string `json:"date_joined,omitempty"`
	Church      int64  `json:"church,omitempty"`
}

// Receipt records money received from a member (dues, levies, donations).
type Receipt struct {
	ID          int64   `json:"id,omitempty"`
	Member      int64   `json:"member" validate:"required"`
	ReceiptType string  `json:"receipt_type" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required"`
	Year        int     `json:"year" validate:"required"`
	Details     string  `json:"details,omitempty"`
	CreatedBy   string  `json:"created_by,omitempty"`
}

// PaymentTypeMemberBenefit marks payouts to a member; only those carry a
// beneficiary.
const PaymentTypeMemberBenefit = "member_benefit"

// Payment records money paid out of the welfare fund.
type Payment struct {
	ID                int64   `json:"id,omitempty"`
	PaymentType       string  `json:"payment_type" validate:"required"`
	BeneficiaryMember int64   `json:"beneficiary_member,omitempty" validate:"required_if=PaymentType member_benefit"`
	PayeeName         string  `json:"payee_name" validate:"required"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod     string  `json:"payment_method" validate:"required"`
	Date              string  `json:"date" validate:"required"`
	ReceiptNumber     string  `json:"receipt_number,omitempty"`
	Description       string  `json:"description,omitempty"`
	CreatedBy         string  `json:"created_by,omitempty"`
	Church            int64   `json:"church,omitempty"`
}

// Event is a member life event (funeral, wedding, ...) that may carry a
// transport levy.
type Event struct {
	ID          int64   `json:"id,omitempty"`
	EventType   string  `json:"event_type" validate:"required"`
	Member      int64   `json:"member" validate:"required"`
	EventDate   string  `json:"event_date" validate:"required"`
	Venue       string  `json:"venue,omitempty"`
	Description string  `json:"description,omitempty"`
	LevyAmount  float64 `json:"levy_amount" validate:"gte=0"`
	IsLevyPaid  bool    `json:"is_levy_paid"`
	CreatedBy   string  `json:"created_by,omitempty"`
	Church      int64   `json:"church,omitempty"`
}

// YearlyDues sets the monthly contribution expected for one year.
type YearlyDues struct {
	ID            int64   `json:"id,omitempty"`
	Year          int     `json:"year" validate:"required"`
	MonthlyAmount float64 `json:"monthly_amount" validate:"required,gt=0"`
	Church        int64   `json:"church,omitempty"`
}

// RoleUser is a row from the role-management listing; unlike the login user
// it always carries the three role booleans explicitly.
type RoleUser struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	FullName       string  `json:"full_name,omitempty"`
	PhoneNumber    string  `json:"phone_number"`
	Email          string  `json:"email,omitempty"`
	Status         string  `json:"status,omitempty"`
	DateJoined     string  `json:"date_joined,omitempty"`
	Church         *Church `json:"church,omitempty"`
	IsMember       bool    `json:"is_member"`
	IsWelfareAdmin bool    `json:"is_welfare_admin"`
	IsChurchAdmin  bool    `json:"is_church_admin"`
}

// RoleUpdate is a partial PATCH body; nil fields are left untouched.
type RoleUpdate struct {
	IsMember       *bool `json:"is_member,omitempty"`
	IsWelfareAdmin *bool `json:"is_welfare_admin,omitempty"`
	IsChurchAdmin  *bool `json:"is_church_admin,omitempty"`
}

// ChurchContact is the editable contact section of the church profile.
type ChurchContact struct {
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Location    string `json:"location,omitempty"`
	WelfareMomo string `json:"welfare_momo,omitempty"`
	ChurchMomo  string `json:"church_momo,omitempty"`
}
