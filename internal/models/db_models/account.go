package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:user"` // user | admin

	Bookings []Booking `gorm:"foreignKey:UserID"`
	Programs []Program `gorm:"foreignKey:UserID"`
}
