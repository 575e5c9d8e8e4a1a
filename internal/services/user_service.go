package services

import (
	"github.com/google/uuid"
	"github.com/snapverse/snapverse-api/internal/dto"
	"github.com/snapverse/snapverse-api/internal/models"
	"github.com/snapverse/snapverse-api/internal/visibility"
	"gorm.io/gorm"
)

type UserService struct {
	db      *gorm.DB
	follows *FollowService
}

func NewUserService(db *gorm.DB, follows *FollowService) *UserService {
	return &UserService{db: db, follows: follows}
}

func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *UserService) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// Profile returns the target's profile shaped by what the viewer may see: a
// private account shows only the minimal card to outsiders.
func (s *UserService) Profile(viewerID uuid.UUID, target *models.User) (*dto.ProfileResponse, error) {
	rel, err := relationshipSetFor(s.db, s.follows, viewerID)
	if err != nil {
		return nil, err
	}

	followers, following, _, err := s.follows.Stats(target.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProfileResponse{
		ID:             target.ID,
		Username:       target.Username,
		FullName:       target.FullName(),
		ProfilePicture: target.ProfilePicture,
		IsPrivate:      target.IsPrivate,
		FollowerCount:  followers,
		FollowingCount: following,
	}

	if visibility.CanViewProfile(rel, target) {
		resp.Bio = target.Bio
		resp.CoverPhoto = target.CoverPhoto
		resp.Location = target.Location
		resp.Gender = target.Gender
		resp.RelationshipStatus = target.RelationshipStatus
		resp.Full = true
	}

	return resp, nil
}

func (s *UserService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if req.Bio != nil {
		if len(*req.Bio) > 200 {
			return nil, validationError("bio must be 200 characters or fewer")
		}
		user.Bio = *req.Bio
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Gender != nil {
		if *req.Gender != "" && !choiceValid(*req.Gender, models.GenderChoices) {
			return nil, validationError("invalid gender")
		}
		user.Gender = *req.Gender
	}
	if req.RelationshipStatus != nil {
		if *req.RelationshipStatus != "" && !choiceValid(*req.RelationshipStatus, models.RelationshipChoices) {
			return nil, validationError("invalid relationship status")
		}
		user.RelationshipStatus = *req.RelationshipStatus
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = req.DateOfBirth
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SetPrivacy flips the account privacy flag. Pending follow requests are left
// pending on a private -> public flip: approval stays an explicit act.
func (s *UserService) SetPrivacy(userID uuid.UUID, isPrivate bool) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if err := s.db.Model(&user).Update("is_private", isPrivate).Error; err != nil {
		return nil, err
	}
	user.IsPrivate = isPrivate
	return &user, nil
}

func (s *UserService) SetProfilePicture(userID uuid.UUID, url string) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("profile_picture", url).Error
}

func (s *UserService) SetCoverPhoto(userID uuid.UUID, url string) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("cover_photo", url).Error
}

func choiceValid(val string, choices []string) bool {
	for _, c := range choices {
		if val == c {
			return true
		}
	}
	return false
}
