// Package entity defines the form-binding shapes of the web layer and their
// field validation. Numeric fields arrive as strings and are validated before
// a model record is built from them.
package entity

import (
	"poseidon/util/validation"
)

// FieldError is a single validation failure, rendered inline next to the
// originating form field.
type FieldError struct {
	Field   string
	Message string
}

// BidDto carries the bid form fields.
type BidDto struct {
	Id          int    `form:"id"`
	Account     string `form:"account"`
	Type        string `form:"type"`
	BidQuantity string `form:"bidQuantity"`
}

func (d *BidDto) Validate() []FieldError {
	var errs []FieldError
	if d.Account == "" {
		errs = append(errs, FieldError{"account", "Account is mandatory"})
	}
	if d.Type == "" {
		errs = append(errs, FieldError{"type", "Type is mandatory"})
	}
	if !validation.IsNumeric(d.BidQuantity) {
		errs = append(errs, FieldError{"bidQuantity", "Bid quantity must be a number"})
	}
	return errs
}

// CurvePointDto carries the curve point form fields.
type CurvePointDto struct {
	Id      int    `form:"id"`
	CurveId string `form:"curveId"`
	Term    string `form:"term"`
	Value   string `form:"value"`
}

func (d *CurvePointDto) Validate() []FieldError {
	var errs []FieldError
	if !validation.IsWholeNumber(d.CurveId) {
		errs = append(errs, FieldError{"curveId", "Curve id must be an integer"})
	}
	if !validation.IsNumeric(d.Term) {
		errs = append(errs, FieldError{"term", "Term must be a number"})
	}
	if !validation.IsNumeric(d.Value) {
		errs = append(errs, FieldError{"value", "Value must be a number"})
	}
	return errs
}

// RatingDto carries the rating form fields.
type RatingDto struct {
	Id           int    `form:"id"`
	MoodysRating string `form:"moodysRating"`
	SandPRating  string `form:"sandPRating"`
	FitchRating  string `form:"fitchRating"`
	OrderNumber  string `form:"orderNumber"`
}

func (d *RatingDto) Validate() []FieldError {
	var errs []FieldError
	if d.MoodysRating == "" {
		errs = append(errs, FieldError{"moodysRating", "Moodys Rating is mandatory"})
	}
	if d.SandPRating == "" {
		errs = append(errs, FieldError{"sandPRating", "SandP Rating is mandatory"})
	}
	if d.FitchRating == "" {
		errs = append(errs, FieldError{"fitchRating", "Fitch Rating is mandatory"})
	}
	if !validation.IsWholeNumber(d.OrderNumber) {
		errs = append(errs, FieldError{"orderNumber", "Order number must be an integer"})
	}
	return errs
}

// RuleNameDto carries the rule form fields. All fields are free text, so
// there is nothing to validate beyond form binding.
type RuleNameDto struct {
	Id          int    `form:"id"`
	Name        string `form:"name"`
	Description string `form:"description"`
	Json        string `form:"json"`
	Template    string `form:"template"`
	SqlStr      string `form:"sqlStr"`
	SqlPart     string `form:"sqlPart"`
}

func (d *RuleNameDto) Validate() []FieldError {
	return nil
}

// TradeDto carries the trade form fields. Only account, type and buy
// quantity are captured through the form.
type TradeDto struct {
	Id          int    `form:"id"`
	Account     string `form:"account"`
	Type        string `form:"type"`
	BuyQuantity string `form:"buyQuantity"`
}

func (d *TradeDto) Validate() []FieldError {
	var errs []FieldError
	if !validation.IsNumeric(d.BuyQuantity) {
		errs = append(errs, FieldError{"buyQuantity", "Buy quantity must be a number"})
	}
	return errs
}

// UserDto carries the user form fields. The password field holds a plaintext
// candidate password on input and is always blanked on output.
type UserDto struct {
	Id       int    `form:"id"`
	Username string `form:"username"`
	Password string `form:"password"`
	Fullname string `form:"fullname"`
	Role     string `form:"role"`
}

func (d *UserDto) Validate() []FieldError {
	var errs []FieldError
	if d.Username == "" {
		errs = append(errs, FieldError{"username", "Username is mandatory"})
	}
	if !validation.IsStrongPassword(d.Password) {
		errs = append(errs, FieldError{"password", "Password must be at least 8 characters with an uppercase letter, a number and a symbol, and no spaces"})
	}
	if d.Fullname == "" {
		errs = append(errs, FieldError{"fullname", "Full name is mandatory"})
	}
	if d.Role == "" {
		errs = append(errs, FieldError{"role", "Role is mandatory"})
	}
	return errs
}
