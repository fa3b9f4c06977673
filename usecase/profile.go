package usecase

import (
	"context"
	"log"
	"time"

	"dailysync/model"
	"dailysync/repository"
)

type ProfileService struct {
	Gateway *Gateway
}

// GetProfile reads the singleton profile document, falling back to the
// offline mirror when the remote store is unreachable. A missing profile is
// returned as an empty document, not an error.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	err := s.Gateway.Store.FindOne(ctx, userID, model.CollectionProfile, userID, &profile)
	if err == nil {
		profile.UserID = userID
		return &profile, nil
	}
	if err == repository.ErrNotFound {
		return &model.Profile{UserID: userID}, nil
	}

	if s.Gateway.Cache != nil {
		var cached model.Profile
		if cerr := s.Gateway.Cache.Get(ctx, userID, model.CollectionProfile, userID, &cached); cerr == nil {
			log.Printf("serving profile from offline cache: %v", err)
			cached.UserID = userID
			return &cached, nil
		}
	}

	return nil, err
}

// SaveProfile overwrites the profile document. Whole-record replace, not a
// field merge.
func (s *ProfileService) SaveProfile(ctx context.Context, userID string, profile *model.Profile) error {
	profile.UserID = userID
	profile.UpdatedAt = time.Now().UnixMilli()
	return s.Gateway.Set(ctx, userID, model.CollectionProfile, userID, profile)
}
