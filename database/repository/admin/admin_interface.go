package adminRepo

import "amberhall/models"

// AdminRepository defines data access for administrator accounts.
type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByID(id string) (*models.Admin, error)
	GetByEmail(email string) (*models.Admin, error)
	Update(admin *models.Admin) error
	Count() (int64, error)
}
