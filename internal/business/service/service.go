package service

import (
	"context"
	"errors"

	bizdomain "github.com/bizdir/backend/internal/business/domain"
	bizrepo "github.com/bizdir/backend/internal/business/repository"
	"github.com/bizdir/backend/internal/common/clock"
	commoncrypto "github.com/bizdir/backend/internal/common/crypto"
	"github.com/bizdir/backend/internal/common/logger"
	"github.com/bizdir/backend/internal/common/validation"
)

// BusinessInput is the mutable payload; bounds follow the resource
// contract.
type BusinessInput struct {
	Name    string `json:"name" validate:"required,min=5,max=100"`
	Address string `json:"address" validate:"required,min=5,max=100"`
	Phone   string `json:"phone" validate:"required,min=5,max=20"`
}

type BusinessService struct {
	repo        bizrepo.Repository
	validator   *validation.Validator
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
	log         *logger.Logger
}

func NewBusinessService(
	repo bizrepo.Repository,
	validator *validation.Validator,
	idGenerator commoncrypto.IDGenerator,
	clock clock.Clock,
	log *logger.Logger,
) *BusinessService {
	return &BusinessService{
		repo:        repo,
		validator:   validator,
		idGenerator: idGenerator,
		clock:       clock,
		log:         log,
	}
}

func (s *BusinessService) List(ctx context.Context) ([]bizdomain.Summary, error) {
	businesses, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "list_businesses_failed",
		}).Errorf("list businesses failed: %v", err)
		return nil, err
	}
	return businesses, nil
}

func (s *BusinessService) Get(ctx context.Context, id string) (bizdomain.Business, error) {
	if err := validation.ValidateRecordID(id); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"business_id": id,
			"action":      "get_business_invalid_id",
		}).Warn("get business failed: malformed id")
		return bizdomain.Business{}, err
	}

	business, err := s.repo.FindByID(ctx, bizdomain.ID(id))
	if err != nil {
		if errors.Is(err, bizrepo.ErrBusinessNotFound) {
			return bizdomain.Business{}, err
		}
		s.log.WithFields(ctx, logger.Fields{
			"business_id": id,
			"action":      "get_business_failed",
		}).Errorf("get business failed: %v", err)
		return bizdomain.Business{}, err
	}

	return business, nil
}

func (s *BusinessService) Create(ctx context.Context, input BusinessInput) (bizdomain.Business, error) {
	if err := s.validator.Struct(input); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "create_business_validation_failed",
		}).Warnf("create business validation failed: %v", err)
		return bizdomain.Business{}, err
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "create_business_id_generation_failed",
		}).Errorf("create business failed: id generation error: %v", err)
		return bizdomain.Business{}, err
	}

	business := bizdomain.Business{
		ID:      bizdomain.ID(id),
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		AddedOn: s.clock.Now(),
	}

	if err := s.repo.Create(ctx, business); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"business_id": id,
			"action":      "create_business_failed",
		}).Errorf("create business failed: %v", err)
		return bizdomain.Business{}, err
	}

	s.log.WithFields(ctx, logger.Fields{
		"business_id": id,
		"action":      "business_created",
	}).Info("business created")

	return business, nil
}

// Update validates the payload before the identifier, then performs a
// full-field replace with a refreshed addedOn.
func (s *BusinessService) Update(ctx context.Context, id string, input BusinessInput) (bizdomain.Business, error) {
	if err := s.validator.Struct(input); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"business_id": id,
			"action":      "update_business_validation_failed",
		}).Warnf("update business validation failed: %v", err)
		return bizdomain.Business{}, err
	}

	if err := validation.ValidateRecordID(id); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"business_id": id,
			"action":      "update_business_invalid_id",
		}).Warn("update business failed: malformed id")
		return bizdomain.Business{}, err
	}

	business := bizdomain.Business{
		ID:      bizdomain.ID(id),
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		AddedOn: s.clock.Now(),
	}

	updated, err := s.repo.Update(ctx, business)
	if err != nil {
		if errors.Is(err, bizrepo.ErrBusinessNotFound) {
			return bizdomain.Business{}, err
		}
		s.log.WithFields(ctx, logger.Fields{
			"business_id": id,
			"action":      "update_business_failed",
		}).Errorf("update business failed: %v", err)
		return bizdomain.Business{}, err
	}

	s.log.WithFields(ctx, logger.Fields{
		"business_id": id,
		"action":      "business_updated",
	}).Info("business updated")

	return updated, nil
}

func (s *BusinessService) Delete(ctx context.Context, id string) error {
	if err := validation.ValidateRecordID(id); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"business_id": id,
			"action":      "delete_business_invalid_id",
		}).Warn("delete business failed: malformed id")
		return err
	}

	if err := s.repo.Delete(ctx, bizdomain.ID(id)); err != nil {
		if errors.Is(err, bizrepo.ErrBusinessNotFound) {
			return err
		}
		s.log.WithFields(ctx, logger.Fields{
			"business_id": id,
			"action":      "delete_business_failed",
		}).Errorf("delete business failed: %v", err)
		return err
	}

	s.log.WithFields(ctx, logger.Fields{
		"business_id": id,
		"action":      "business_deleted",
	}).Info("business deleted")

	return nil
}
