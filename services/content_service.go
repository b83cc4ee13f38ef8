package services

import (
	"errors"
	"time"

	"domino-admin-system/models"

	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContentService covers the plain content entities: game rooms, news,
// XP boosters and pairing service listings.
type ContentService struct {
	DB *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{DB: db}
}

// ---- Game rooms ----

type GameRoomInput struct {
	Name             string              `json:"name"`
	Type             string              `json:"type"`
	Description      string              `json:"description"`
	MinLevel         int                 `json:"minLevel"`
	EntryFee         int                 `json:"entryFee"`
	EntryFeeCurrency models.CurrencyType `json:"entryFeeCurrency"`
	MaxPlayers       int                 `json:"maxPlayers"`
	IsActive         *bool               `json:"isActive"`
}

func (s *ContentService) ListGameRooms() ([]models.GameRoom, error) {
	var rooms []models.GameRoom
	if err := s.DB.Order("min_level ASC, created_at ASC").Find(&rooms).Error; err != nil {
		return nil, storageErr(err)
	}
	return rooms, nil
}

func (s *ContentService) CreateGameRoom(in GameRoomInput) (*models.GameRoom, error) {
	if in.Name == "" || in.Type == "" {
		return nil, validationf("name and type are required")
	}
	currency := in.EntryFeeCurrency
	if currency == "" {
		currency = models.CurrencyCoins
	}
	if !currency.Valid() {
		return nil, validationf("entryFeeCurrency must be coins or gems")
	}
	minLevel := in.MinLevel
	if minLevel < 1 {
		minLevel = 1
	}
	maxPlayers := in.MaxPlayers
	if maxPlayers < 2 {
		maxPlayers = 2
	}

	room := models.GameRoom{
		Name:             in.Name,
		Type:             in.Type,
		Description:      in.Description,
		MinLevel:         minLevel,
		EntryFee:         in.EntryFee,
		EntryFeeCurrency: currency,
		MaxPlayers:       maxPlayers,
		IsActive:         in.IsActive == nil || *in.IsActive,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return nil, storageErr(err)
	}
	return &room, nil
}

func (s *ContentService) UpdateGameRoom(id string, in GameRoomInput) (*models.GameRoom, error) {
	var room models.GameRoom
	if err := s.DB.First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("game room %s", id)
		}
		return nil, storageErr(err)
	}

	if in.Name != "" {
		room.Name = in.Name
	}
	if in.Type != "" {
		room.Type = in.Type
	}
	if in.Description != "" {
		room.Description = in.Description
	}
	if in.MinLevel > 0 {
		room.MinLevel = in.MinLevel
	}
	if in.EntryFee >= 0 {
		room.EntryFee = in.EntryFee
	}
	if in.EntryFeeCurrency != "" {
		if !in.EntryFeeCurrency.Valid() {
			return nil, validationf("entryFeeCurrency must be coins or gems")
		}
		room.EntryFeeCurrency = in.EntryFeeCurrency
	}
	if in.MaxPlayers >= 2 {
		room.MaxPlayers = in.MaxPlayers
	}
	if in.IsActive != nil {
		room.IsActive = *in.IsActive
	}
	if err := s.DB.Save(&room).Error; err != nil {
		return nil, storageErr(err)
	}
	return &room, nil
}

func (s *ContentService) DeleteGameRoom(id string) error {
	res := s.DB.Delete(&models.GameRoom{}, "id = ?", id)
	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundf("game room %s", id)
	}
	return nil
}

// ---- News ----

type NewsInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
	Priority int    `json:"priority"`
	IsActive *bool  `json:"isActive"`
}

func (s *ContentService) ListNews() ([]models.News, error) {
	var items []models.News
	if err := s.DB.Order("priority DESC, created_at DESC").Find(&items).Error; err != nil {
		return nil, storageErr(err)
	}
	return items, nil
}

func (s *ContentService) CreateNews(in NewsInput) (*models.News, error) {
	if in.Title == "" || in.Content == "" {
		return nil, validationf("title and content are required")
	}

	item := models.News{
		Title:    in.Title,
		Slug:     slug.Make(in.Title),
		Content:  in.Content,
		ImageURL: in.ImageURL,
		Priority: in.Priority,
		IsActive: in.IsActive == nil || *in.IsActive,
	}
	if err := s.DB.Create(&item).Error; err != nil {
		return nil, storageErr(err)
	}
	return &item, nil
}

func (s *ContentService) UpdateNews(id string, in NewsInput) (*models.News, error) {
	var item models.News
	if err := s.DB.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("news %s", id)
		}
		return nil, storageErr(err)
	}

	if in.Title != "" {
		item.Title = in.Title
		item.Slug = slug.Make(in.Title)
	}
	if in.Content != "" {
		item.Content = in.Content
	}
	if in.ImageURL != "" {
		item.ImageURL = in.ImageURL
	}
	item.Priority = in.Priority
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}
	if err := s.DB.Save(&item).Error; err != nil {
		return nil, storageErr(err)
	}
	return &item, nil
}

func (s *ContentService) DeleteNews(id string) error {
	res := s.DB.Delete(&models.News{}, "id = ?", id)
	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundf("news %s", id)
	}
	return nil
}

// ---- XP boosters ----

type XpBoosterInput struct {
	PlayerID   string `json:"playerId"`
	Multiplier int    `json:"multiplier"`
	Duration   int    `json:"duration"` // days
	Price      int    `json:"price"`
}

func (s *ContentService) ListXpBoosters() ([]models.XpBooster, error) {
	var boosters []models.XpBooster
	if err := s.DB.Order("purchased_at DESC").Find(&boosters).Error; err != nil {
		return nil, storageErr(err)
	}
	return boosters, nil
}

func (s *ContentService) CreateXpBooster(in XpBoosterInput) (*models.XpBooster, error) {
	if in.PlayerID == "" {
		return nil, validationf("playerId is required")
	}
	var player models.Player
	if err := s.DB.First(&player, "id = ?", in.PlayerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("player %s", in.PlayerID)
		}
		return nil, storageErr(err)
	}

	multiplier := in.Multiplier
	if multiplier < 2 {
		multiplier = 2
	}
	duration := in.Duration
	if duration <= 0 {
		duration = 7
	}
	price := in.Price
	if price <= 0 {
		price = 10000
	}

	expires := time.Now().AddDate(0, 0, duration)
	booster := models.XpBooster{
		PlayerID:   in.PlayerID,
		Multiplier: multiplier,
		Duration:   duration,
		Price:      price,
		IsActive:   true,
		ExpiresAt:  &expires,
	}
	if err := s.DB.Create(&booster).Error; err != nil {
		return nil, storageErr(err)
	}
	return &booster, nil
}

func (s *ContentService) DeactivateXpBooster(id string) (*models.XpBooster, error) {
	var booster models.XpBooster
	if err := s.DB.First(&booster, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("xp booster %s", id)
		}
		return nil, storageErr(err)
	}
	if booster.IsActive {
		booster.IsActive = false
		if err := s.DB.Save(&booster).Error; err != nil {
			return nil, storageErr(err)
		}
	}
	return &booster, nil
}

// ---- Pairing services ----

type PairingServiceInput struct {
	ServiceName string         `json:"serviceName"`
	Description string         `json:"description"`
	LicenseCert string         `json:"licenseCert"`
	IsVerified  *bool          `json:"isVerified"`
	ContactInfo datatypes.JSON `json:"contactInfo"`
}

func (s *ContentService) ListPairingServices() ([]models.PairingService, error) {
	var services []models.PairingService
	if err := s.DB.Order("created_at DESC").Find(&services).Error; err != nil {
		return nil, storageErr(err)
	}
	return services, nil
}

func (s *ContentService) CreatePairingService(in PairingServiceInput) (*models.PairingService, error) {
	if in.ServiceName == "" {
		return nil, validationf("serviceName is required")
	}

	svc := models.PairingService{
		ServiceName: in.ServiceName,
		Description: in.Description,
		LicenseCert: in.LicenseCert,
		IsVerified:  in.IsVerified != nil && *in.IsVerified,
		ContactInfo: in.ContactInfo,
	}
	if err := s.DB.Create(&svc).Error; err != nil {
		return nil, storageErr(err)
	}
	return &svc, nil
}

func (s *ContentService) UpdatePairingService(id string, in PairingServiceInput) (*models.PairingService, error) {
	var svc models.PairingService
	if err := s.DB.First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("pairing service %s", id)
		}
		return nil, storageErr(err)
	}

	if in.ServiceName != "" {
		svc.ServiceName = in.ServiceName
	}
	if in.Description != "" {
		svc.Description = in.Description
	}
	if in.LicenseCert != "" {
		svc.LicenseCert = in.LicenseCert
	}
	if in.IsVerified != nil {
		svc.IsVerified = *in.IsVerified
	}
	if len(in.ContactInfo) > 0 {
		svc.ContactInfo = in.ContactInfo
	}
	if err := s.DB.Save(&svc).Error; err != nil {
		return nil, storageErr(err)
	}
	return &svc, nil
}

func (s *ContentService) DeletePairingService(id string) error {
	res := s.DB.Delete(&models.PairingService{}, "id = ?", id)
	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundf("pairing service %s", id)
	}
	return nil
}
