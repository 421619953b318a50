package identity

import "time"

// Permission is a named capability flag on a user profile. Nothing enforces
// these yet; they ship to the client as-is.
type Permission struct {
	Name   string `bson:"permission" json:"permission"`
	Status bool   `bson:"status" json:"status"`
}

// User is the identity record for a player. ID is the zero-padded sequential
// display identifier, distinct from the storage key; Phone is the unique
// natural key used for lookup.
type User struct {
	ID              string       `bson:"id" json:"id"`
	Phone           string       `bson:"phone" json:"phone"`
	Name            string       `bson:"name,omitempty" json:"name,omitempty"`
	Email           string       `bson:"email,omitempty" json:"email,omitempty"`
	UserType        string       `bson:"user_type" json:"user_type"`
	ActiveOTP       string       `bson:"active_otp" json:"-"`
	WalletBalance   float64      `bson:"wallet_balance" json:"wallet_balance"`
	HoldBalance     float64      `bson:"hold_balance" json:"hold_balance"`
	ReferralCode    string       `bson:"referral_code" json:"referral_code"`
	ReferralEarning float64      `bson:"referral_earning" json:"referral_earning"`
	Avatar          string       `bson:"avatar,omitempty" json:"avatar,omitempty"`
	LastLogin       time.Time    `bson:"last_login" json:"last_login"`
	UserStatus      string       `bson:"user_status" json:"user_status"`
	Permissions     []Permission `bson:"permissions" json:"permissions"`
	TotalDeposit    float64      `bson:"total_deposit" json:"total_deposit"`
	TotalWithdrawal float64      `bson:"total_withdrawal" json:"total_withdrawal"`
	MiscAmount      float64      `bson:"misc_amount" json:"misc_amount"`
	CreatedAt       time.Time    `bson:"created_at" json:"created_at"`
}

// UserUpdate carries the mutable profile fields for a partial update. Empty
// fields are left unchanged.
type UserUpdate struct {
	Name     string
	Email    string
	UserType string
	Avatar   string
}

const (
	defaultUserType   = "Player"
	defaultUserStatus = "unblock"
)

// NewUser builds an identity record with default profile attributes.
func NewUser(id, phone, activeOTP string, now time.Time) User {
	return User{
		ID:           id,
		Phone:        phone,
		UserType:     defaultUserType,
		ActiveOTP:    activeOTP,
		ReferralCode: "REF" + id,
		LastLogin:    now,
		UserStatus:   defaultUserStatus,
		Permissions: []Permission{
			{Name: "Create Game", Status: true},
			{Name: "Join Tournament", Status: true},
			{Name: "Withdraw Funds", Status: false},
		},
		CreatedAt: now,
	}
}
