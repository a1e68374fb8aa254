package service

import (
	"fmt"

	"poseidon/database"
	"poseidon/database/model"
	"poseidon/logger"
	"poseidon/util/validation"
	"poseidon/web/entity"
)

// TradeService provides business logic for managing trades.
type TradeService struct{}

func (s *TradeService) GetTrades() ([]*model.Trade, error) {
	db := database.GetDB()
	var trades []*model.Trade
	err := db.Find(&trades).Error
	if err != nil {
		return nil, err
	}
	return trades, nil
}

func (s *TradeService) GetTrade(id int) (*model.Trade, error) {
	db := database.GetDB()
	var trade model.Trade
	err := db.First(&trade, id).Error
	if database.IsNotFound(err) {
		return nil, fmt.Errorf("could not find trade with id %d: %w", id, ErrNotFound)
	} else if err != nil {
		return nil, err
	}
	return &trade, nil
}

func (s *TradeService) CreateTrade(trade *model.Trade) error {
	db := database.GetDB()
	if trade.Id != 0 {
		if _, err := s.GetTrade(trade.Id); err == nil {
			return fmt.Errorf("trade with id %d: %w", trade.Id, ErrConflict)
		}
	}
	if err := db.Create(trade).Error; err != nil {
		return err
	}
	logger.Infof("created trade for account %q, quantity %s", trade.Account, trade.BuyQuantity)
	return nil
}

func (s *TradeService) UpdateTrade(id int, trade *model.Trade) error {
	db := database.GetDB()
	if _, err := s.GetTrade(id); err != nil {
		return err
	}
	trade.Id = id
	if err := db.Save(trade).Error; err != nil {
		return err
	}
	logger.Infof("updated trade %d for account %q", id, trade.Account)
	return nil
}

func (s *TradeService) DeleteTrade(id int) error {
	db := database.GetDB()
	trade, err := s.GetTrade(id)
	if err != nil {
		return err
	}
	if err := db.Delete(trade).Error; err != nil {
		return err
	}
	logger.Infof("deleted trade %d", id)
	return nil
}

// ToEntity builds a trade record from a validated form DTO. Columns not
// captured by the form stay at their zero values.
func (s *TradeService) ToEntity(dto *entity.TradeDto) (*model.Trade, error) {
	quantity, err := validation.ParseDecimal(dto.BuyQuantity)
	if err != nil {
		return nil, err
	}
	return &model.Trade{
		Id:          dto.Id,
		Account:     dto.Account,
		Type:        dto.Type,
		BuyQuantity: quantity,
	}, nil
}

// ToDto maps a trade record back to its form shape.
func (s *TradeService) ToDto(trade *model.Trade) *entity.TradeDto {
	return &entity.TradeDto{
		Id:          trade.Id,
		Account:     trade.Account,
		Type:        trade.Type,
		BuyQuantity: trade.BuyQuantity.String(),
	}
}
