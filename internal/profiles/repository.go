package profiles

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(name, host string, port uint16, username, privateKeyPath string) (*Profile, error) {
	existing, err := r.GetByName(name)

	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	if existing != nil {
		return nil, ErrProfileAlreadyExists
	}

	profile := &Profile{
		ID:             uuid.New().String(),
		Name:           name,
		Host:           host,
		Port:           port,
		Username:       username,
		PrivateKeyPath: privateKeyPath,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	err = r.db.Create(profile).Error

	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *Repository) GetByName(name string) (*Profile, error) {
	profile := &Profile{}

	err := r.db.First(profile, "name = ?", name).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return profile, nil
}

func (r *Repository) GetAll() []Profile {
	var allProfiles []Profile

	r.db.Order("name ASC").Find(&allProfiles)

	return allProfiles
}

func (r *Repository) Delete(name string) error {
	result := r.db.Delete(&Profile{}, "name = ?", name)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}
