package service

import (
	"fmt"
	"strconv"

	"poseidon/database"
	"poseidon/database/model"
	"poseidon/logger"
	"poseidon/web/entity"
)

// RatingService provides business logic for managing ratings.
type RatingService struct{}

func (s *RatingService) GetRatings() ([]*model.Rating, error) {
	db := database.GetDB()
	var ratings []*model.Rating
	err := db.Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (s *RatingService) GetRating(id int) (*model.Rating, error) {
	db := database.GetDB()
	var rating model.Rating
	err := db.First(&rating, id).Error
	if database.IsNotFound(err) {
		return nil, fmt.Errorf("could not find rating with id %d: %w", id, ErrNotFound)
	} else if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (s *RatingService) CreateRating(rating *model.Rating) error {
	db := database.GetDB()
	if rating.Id != 0 {
		if _, err := s.GetRating(rating.Id); err == nil {
			return fmt.Errorf("rating with id %d: %w", rating.Id, ErrConflict)
		}
	}
	if err := db.Create(rating).Error; err != nil {
		return err
	}
	logger.Infof("created rating %q/%q/%q", rating.MoodysRating, rating.SandPRating, rating.FitchRating)
	return nil
}

func (s *RatingService) UpdateRating(id int, rating *model.Rating) error {
	db := database.GetDB()
	if _, err := s.GetRating(id); err != nil {
		return err
	}
	rating.Id = id
	if err := db.Save(rating).Error; err != nil {
		return err
	}
	logger.Infof("updated rating %d", id)
	return nil
}

func (s *RatingService) DeleteRating(id int) error {
	db := database.GetDB()
	rating, err := s.GetRating(id)
	if err != nil {
		return err
	}
	if err := db.Delete(rating).Error; err != nil {
		return err
	}
	logger.Infof("deleted rating %d", id)
	return nil
}

// ToEntity builds a rating record from a validated form DTO.
func (s *RatingService) ToEntity(dto *entity.RatingDto) (*model.Rating, error) {
	orderNumber, err := strconv.Atoi(dto.OrderNumber)
	if err != nil {
		return nil, err
	}
	return &model.Rating{
		Id:           dto.Id,
		MoodysRating: dto.MoodysRating,
		SandPRating:  dto.SandPRating,
		FitchRating:  dto.FitchRating,
		OrderNumber:  orderNumber,
	}, nil
}

// ToDto maps a rating record back to its form shape.
func (s *RatingService) ToDto(rating *model.Rating) *entity.RatingDto {
	return &entity.RatingDto{
		Id:           rating.Id,
		MoodysRating: rating.MoodysRating,
		SandPRating:  rating.SandPRating,
		FitchRating:  rating.FitchRating,
		OrderNumber:  strconv.Itoa(rating.OrderNumber),
	}
}
