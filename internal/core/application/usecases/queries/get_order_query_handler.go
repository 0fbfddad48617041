package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/order"
	"pharmorders/internal/core/domain/services"
	"pharmorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with parsed items and raw content.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. An unknown identifier fails with an
// errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.lab_id,
			o.pharmacy_id,
			p.name,
			o.file_name,
			o.created_at,
			o.status,
			o.references_count,
			o.boxes_count,
			o.reviewed_at,
			o.reviewed_by,
			o.review_note,
			o.expected_delivery_date,
			o.delivered_at,
			o.raw_content,
			o.parsed_data
		FROM orders o
		LEFT JOIN pharmacies p ON p.id = o.pharmacy_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderDetailResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderDetailResponse{}, err
		}
		return OrderDetailResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	var (
		detail               OrderDetailResponse
		id, labID            uuid.UUID
		pharmacyID           uuid.UUID
		pharmacyName         sql.NullString
		statusValue          int
		reviewedAt           sql.NullTime
		reviewedBy           sql.NullString
		reviewNote           sql.NullString
		expectedDeliveryDate sql.NullTime
		deliveredAt          sql.NullTime
		parsedData           []byte
	)

	err = rows.Scan(
		&id,
		&labID,
		&pharmacyID,
		&pharmacyName,
		&detail.FileName,
		&detail.CreatedAt,
		&statusValue,
		&detail.ReferencesCount,
		&detail.BoxesCount,
		&reviewedAt,
		&reviewedBy,
		&reviewNote,
		&expectedDeliveryDate,
		&deliveredAt,
		&detail.RawContent,
		&parsedData,
	)
	if err != nil {
		return OrderDetailResponse{}, err
	}

	if detail.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderDetailResponse{}, err
	}
	if detail.LabID, err = kernel.UUIDFromBytes(labID[:]); err != nil {
		return OrderDetailResponse{}, err
	}
	if detail.PharmacyID, err = kernel.UUIDFromBytes(pharmacyID[:]); err != nil {
		return OrderDetailResponse{}, err
	}

	detail.PharmacyName = pharmacyName.String
	if !pharmacyName.Valid {
		detail.PharmacyName = services.PlaceholderPharmacyName(detail.PharmacyID)
	}

	detail.Status = order.Status(statusValue).String()
	detail.ReviewedBy = reviewedBy.String
	detail.ReviewNote = reviewNote.String
	if reviewedAt.Valid {
		detail.ReviewedAt = &reviewedAt.Time
	}
	if expectedDeliveryDate.Valid {
		detail.ExpectedDeliveryDate = &expectedDeliveryDate.Time
	}
	if deliveredAt.Valid {
		detail.DeliveredAt = &deliveredAt.Time
	}

	if len(parsedData) > 0 {
		if err = json.Unmarshal(parsedData, &detail.Items); err != nil {
			return OrderDetailResponse{}, err
		}
	}

	return detail, rows.Err()
}
