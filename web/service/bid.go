package service

import (
	"fmt"

	"poseidon/database"
	"poseidon/database/model"
	"poseidon/logger"
	"poseidon/util/validation"
	"poseidon/web/entity"
)

// BidService provides business logic for managing bids.
type BidService struct{}

// GetBids retrieves every bid.
func (s *BidService) GetBids() ([]*model.Bid, error) {
	db := database.GetDB()
	var bids []*model.Bid
	err := db.Find(&bids).Error
	if err != nil {
		return nil, err
	}
	return bids, nil
}

// GetBid retrieves a bid by id.
func (s *BidService) GetBid(id int) (*model.Bid, error) {
	db := database.GetDB()
	var bid model.Bid
	err := db.First(&bid, id).Error
	if database.IsNotFound(err) {
		return nil, fmt.Errorf("could not find bid with id %d: %w", id, ErrNotFound)
	} else if err != nil {
		return nil, err
	}
	return &bid, nil
}

// CreateBid persists a new bid. A bid that already carries the id of an
// existing row is rejected.
func (s *BidService) CreateBid(bid *model.Bid) error {
	db := database.GetDB()
	if bid.Id != 0 {
		if _, err := s.GetBid(bid.Id); err == nil {
			return fmt.Errorf("bid with id %d: %w", bid.Id, ErrConflict)
		}
	}
	if err := db.Create(bid).Error; err != nil {
		return err
	}
	logger.Infof("created bid for account %q, quantity %s", bid.Account, bid.BidQuantity)
	return nil
}

// UpdateBid overwrites the bid at id with the given fields. The stored id
// always wins over whatever id the input carries.
func (s *BidService) UpdateBid(id int, bid *model.Bid) error {
	db := database.GetDB()
	if _, err := s.GetBid(id); err != nil {
		return err
	}
	bid.Id = id
	if err := db.Save(bid).Error; err != nil {
		return err
	}
	logger.Infof("updated bid %d for account %q", id, bid.Account)
	return nil
}

// DeleteBid removes the bid at id.
func (s *BidService) DeleteBid(id int) error {
	db := database.GetDB()
	bid, err := s.GetBid(id)
	if err != nil {
		return err
	}
	if err := db.Delete(bid).Error; err != nil {
		return err
	}
	logger.Infof("deleted bid %d", id)
	return nil
}

// ToEntity builds a bid record from a validated form DTO.
func (s *BidService) ToEntity(dto *entity.BidDto) (*model.Bid, error) {
	quantity, err := validation.ParseDecimal(dto.BidQuantity)
	if err != nil {
		return nil, err
	}
	return &model.Bid{
		Id:          dto.Id,
		Account:     dto.Account,
		Type:        dto.Type,
		BidQuantity: quantity,
	}, nil
}

// ToDto maps a bid record back to its form shape.
func (s *BidService) ToDto(bid *model.Bid) *entity.BidDto {
	return &entity.BidDto{
		Id:          bid.Id,
		Account:     bid.Account,
		Type:        bid.Type,
		BidQuantity: bid.BidQuantity.String(),
	}
}
