package service

import (
	"fmt"
	"strconv"
	"time"

	"poseidon/database"
	"poseidon/database/model"
	"poseidon/logger"
	"poseidon/util/validation"
	"poseidon/web/entity"
)

// CurvePointService provides business logic for managing curve points.
type CurvePointService struct{}

func (s *CurvePointService) GetCurvePoints() ([]*model.CurvePoint, error) {
	db := database.GetDB()
	var points []*model.CurvePoint
	err := db.Find(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}

func (s *CurvePointService) GetCurvePoint(id int) (*model.CurvePoint, error) {
	db := database.GetDB()
	var point model.CurvePoint
	err := db.First(&point, id).Error
	if database.IsNotFound(err) {
		return nil, fmt.Errorf("could not find curve point with id %d: %w", id, ErrNotFound)
	} else if err != nil {
		return nil, err
	}
	return &point, nil
}

// CreateCurvePoint persists a new curve point, stamping its creation date.
func (s *CurvePointService) CreateCurvePoint(point *model.CurvePoint) error {
	db := database.GetDB()
	if point.Id != 0 {
		if _, err := s.GetCurvePoint(point.Id); err == nil {
			return fmt.Errorf("curve point with id %d: %w", point.Id, ErrConflict)
		}
	}
	if point.CreationDate == nil {
		now := time.Now()
		point.CreationDate = &now
	}
	if err := db.Create(point).Error; err != nil {
		return err
	}
	logger.Infof("created curve point for curve %d, term %s", point.CurveId, point.Term)
	return nil
}

func (s *CurvePointService) UpdateCurvePoint(id int, point *model.CurvePoint) error {
	db := database.GetDB()
	existing, err := s.GetCurvePoint(id)
	if err != nil {
		return err
	}
	point.Id = id
	point.CreationDate = existing.CreationDate
	if err := db.Save(point).Error; err != nil {
		return err
	}
	logger.Infof("updated curve point %d", id)
	return nil
}

func (s *CurvePointService) DeleteCurvePoint(id int) error {
	db := database.GetDB()
	point, err := s.GetCurvePoint(id)
	if err != nil {
		return err
	}
	if err := db.Delete(point).Error; err != nil {
		return err
	}
	logger.Infof("deleted curve point %d", id)
	return nil
}

// ToEntity builds a curve point record from a validated form DTO.
func (s *CurvePointService) ToEntity(dto *entity.CurvePointDto) (*model.CurvePoint, error) {
	curveId, err := strconv.Atoi(dto.CurveId)
	if err != nil {
		return nil, err
	}
	term, err := validation.ParseDecimal(dto.Term)
	if err != nil {
		return nil, err
	}
	value, err := validation.ParseDecimal(dto.Value)
	if err != nil {
		return nil, err
	}
	return &model.CurvePoint{
		Id:      dto.Id,
		CurveId: curveId,
		Term:    term,
		Value:   value,
	}, nil
}

// ToDto maps a curve point record back to its form shape.
func (s *CurvePointService) ToDto(point *model.CurvePoint) *entity.CurvePointDto {
	return &entity.CurvePointDto{
		Id:      point.Id,
		CurveId: strconv.Itoa(point.CurveId),
		Term:    point.Term.String(),
		Value:   point.Value.String(),
	}
}
