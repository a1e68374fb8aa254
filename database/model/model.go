// Package model defines the persisted record types of the panel.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bid is a bid list entry for an account.
type Bid struct {
	Id          int             `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Account     string          `json:"account" form:"account"`
	Type        string          `json:"type" form:"type"`
	BidQuantity decimal.Decimal `json:"bidQuantity" form:"bidQuantity" gorm:"type:decimal(20,8)"`
}

// CurvePoint is a single term/value point of a pricing curve.
type CurvePoint struct {
	Id           int             `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	CurveId      int             `json:"curveId" form:"curveId"`
	AsOfDate     *time.Time      `json:"asOfDate"`
	Term         decimal.Decimal `json:"term" form:"term" gorm:"type:decimal(20,8)"`
	Value        decimal.Decimal `json:"value" form:"value" gorm:"type:decimal(20,8)"`
	CreationDate *time.Time      `json:"creationDate"`
}

// Rating carries the agency ratings of an instrument and a display order.
type Rating struct {
	Id           int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	MoodysRating string `json:"moodysRating" form:"moodysRating"`
	SandPRating  string `json:"sandPRating" form:"sandPRating" gorm:"column:sandp_rating"`
	FitchRating  string `json:"fitchRating" form:"fitchRating"`
	OrderNumber  int    `json:"orderNumber" form:"orderNumber"`
}

// RuleName is a named rule definition. The json, template and SQL fields are
// opaque text, never parsed by the panel.
type RuleName struct {
	Id          int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Json        string `json:"json" form:"json"`
	Template    string `json:"template" form:"template"`
	SqlStr      string `json:"sqlStr" form:"sqlStr"`
	SqlPart     string `json:"sqlPart" form:"sqlPart"`
}

// Trade is a booked trade. Only account, type and buy quantity are captured
// through the forms; the remaining columns exist for imported data.
type Trade struct {
	Id           int             `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Account      string          `json:"account" form:"account"`
	Type         string          `json:"type" form:"type"`
	BuyQuantity  decimal.Decimal `json:"buyQuantity" form:"buyQuantity" gorm:"type:decimal(20,8)"`
	SellQuantity decimal.Decimal `json:"sellQuantity" form:"sellQuantity" gorm:"type:decimal(20,8)"`
	BuyPrice     decimal.Decimal `json:"buyPrice" form:"buyPrice" gorm:"type:decimal(20,8)"`
	SellPrice    decimal.Decimal `json:"sellPrice" form:"sellPrice" gorm:"type:decimal(20,8)"`
	TradeDate    *time.Time      `json:"tradeDate"`
	Security     string          `json:"security" form:"security"`
	Status       string          `json:"status" form:"status"`
	Trader       string          `json:"trader" form:"trader"`
	Benchmark    string          `json:"benchmark" form:"benchmark"`
	Book         string          `json:"book" form:"book"`
	CreationName string          `json:"creationName"`
	CreationDate *time.Time      `json:"creationDate"`
	RevisionName string          `json:"revisionName"`
	RevisionDate *time.Time      `json:"revisionDate"`
	DealName     string          `json:"dealName" form:"dealName"`
	DealType     string          `json:"dealType" form:"dealType"`
	SourceListId string          `json:"sourceListId" form:"sourceListId"`
	Side         string          `json:"side" form:"side"`
}
