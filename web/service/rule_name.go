package service

import (
	"fmt"

	"poseidon/database"
	"poseidon/database/model"
	"poseidon/logger"
	"poseidon/web/entity"
)

// RuleNameService provides business logic for managing rule definitions.
type RuleNameService struct{}

func (s *RuleNameService) GetRuleNames() ([]*model.RuleName, error) {
	db := database.GetDB()
	var rules []*model.RuleName
	err := db.Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (s *RuleNameService) GetRuleName(id int) (*model.RuleName, error) {
	db := database.GetDB()
	var rule model.RuleName
	err := db.First(&rule, id).Error
	if database.IsNotFound(err) {
		return nil, fmt.Errorf("could not find rule with id %d: %w", id, ErrNotFound)
	} else if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (s *RuleNameService) CreateRuleName(rule *model.RuleName) error {
	db := database.GetDB()
	if rule.Id != 0 {
		if _, err := s.GetRuleName(rule.Id); err == nil {
			return fmt.Errorf("rule with id %d: %w", rule.Id, ErrConflict)
		}
	}
	if err := db.Create(rule).Error; err != nil {
		return err
	}
	logger.Infof("created rule %q", rule.Name)
	return nil
}

func (s *RuleNameService) UpdateRuleName(id int, rule *model.RuleName) error {
	db := database.GetDB()
	if _, err := s.GetRuleName(id); err != nil {
		return err
	}
	rule.Id = id
	if err := db.Save(rule).Error; err != nil {
		return err
	}
	logger.Infof("updated rule %d (%q)", id, rule.Name)
	return nil
}

func (s *RuleNameService) DeleteRuleName(id int) error {
	db := database.GetDB()
	rule, err := s.GetRuleName(id)
	if err != nil {
		return err
	}
	if err := db.Delete(rule).Error; err != nil {
		return err
	}
	logger.Infof("deleted rule %d", id)
	return nil
}

// ToEntity builds a rule record from its form DTO. All fields are opaque
// text, copied as-is.
func (s *RuleNameService) ToEntity(dto *entity.RuleNameDto) *model.RuleName {
	return &model.RuleName{
		Id:          dto.Id,
		Name:        dto.Name,
		Description: dto.Description,
		Json:        dto.Json,
		Template:    dto.Template,
		SqlStr:      dto.SqlStr,
		SqlPart:     dto.SqlPart,
	}
}

// ToDto maps a rule record back to its form shape.
func (s *RuleNameService) ToDto(rule *model.RuleName) *entity.RuleNameDto {
	return &entity.RuleNameDto{
		Id:          rule.Id,
		Name:        rule.Name,
		Description: rule.Description,
		Json:        rule.Json,
		Template:    rule.Template,
		SqlStr:      rule.SqlStr,
		SqlPart:     rule.SqlPart,
	}
}
