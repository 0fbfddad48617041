// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The parsed line items are stored as a jsonb document next to the raw CSV
// text; lab, pharmacy and status columns are indexed for the list queries.
type OrderDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	LabID                uuid.UUID `gorm:"type:uuid;index"`
	PharmacyID           uuid.UUID `gorm:"type:uuid;index"`
	FileName             string
	CreatedAt            time.Time `gorm:"type:timestamptz"`
	RawContent           string    `gorm:"type:text"`
	ParsedData           string    `gorm:"type:jsonb"`
	ReferencesCount      int
	BoxesCount           int
	Status               int `gorm:"index"`
	ReviewedAt           *time.Time `gorm:"type:timestamptz"`
	ReviewedBy           string
	ReviewNote           string
	ExpectedDeliveryDate *time.Time `gorm:"type:timestamptz"`
	DeliveredAt          *time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// lineItemDTO is the jsonb element for one parsed line item.
type lineItemDTO struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := aggregate.Items()
	itemDTOs := make([]lineItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, lineItemDTO{
			Code:     item.Code(),
			Quantity: item.Quantity(),
		})
	}

	parsedData, err := json.Marshal(itemDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		LabID:                aggregate.LabID().Bytes(),
		PharmacyID:           aggregate.PharmacyID().Bytes(),
		FileName:             aggregate.FileName(),
		CreatedAt:            aggregate.CreatedAt(),
		RawContent:           aggregate.RawContent(),
		ParsedData:           string(parsedData),
		ReferencesCount:      aggregate.ReferencesCount(),
		BoxesCount:           aggregate.BoxesCount(),
		Status:               int(aggregate.Status()),
		ReviewedAt:           aggregate.ReviewedAt(),
		ReviewedBy:           aggregate.ReviewedBy(),
		ReviewNote:           aggregate.ReviewNote(),
		ExpectedDeliveryDate: aggregate.ExpectedDeliveryDate(),
		DeliveredAt:          aggregate.DeliveredAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder so every invariant
// is re-validated on load.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	labID, err := kernel.UUIDFromBytes(dto.LabID[:])
	if err != nil {
		return nil, err
	}
	pharmacyID, err := kernel.UUIDFromBytes(dto.PharmacyID[:])
	if err != nil {
		return nil, err
	}

	var itemDTOs []lineItemDTO
	if dto.ParsedData != "" {
		if err = json.Unmarshal([]byte(dto.ParsedData), &itemDTOs); err != nil {
			return nil, err
		}
	}

	items := make([]order.LineItem, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := order.NewLineItem(itemDTO.Code, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                   id,
		LabID:                labID,
		PharmacyID:           pharmacyID,
		FileName:             dto.FileName,
		CreatedAt:            dto.CreatedAt,
		RawContent:           dto.RawContent,
		Items:                items,
		ReferencesCount:      dto.ReferencesCount,
		BoxesCount:           dto.BoxesCount,
		Status:               order.Status(dto.Status),
		ReviewedAt:           dto.ReviewedAt,
		ReviewedBy:           dto.ReviewedBy,
		ReviewNote:           dto.ReviewNote,
		ExpectedDeliveryDate: dto.ExpectedDeliveryDate,
		DeliveredAt:          dto.DeliveredAt,
	})
}
