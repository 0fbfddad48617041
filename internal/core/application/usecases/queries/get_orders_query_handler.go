package queries

import (
	"context"
	"database/sql"
	"strings"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/order"
	"pharmorders/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order summaries from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern; the
// pharmacy name is joined in so list views need no extra lookups.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query, newest orders first. Orders whose pharmacy
// record is gone get a deterministic placeholder name.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
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
			o.delivered_at
		FROM orders o
		LEFT JOIN pharmacies p ON p.id = o.pharmacy_id
	`

	var conditions []string
	var args []any
	if labID := query.LabID(); labID != nil {
		conditions = append(conditions, "o.lab_id = ?")
		args = append(args, labID.Bytes())
	}
	if pharmacyID := query.PharmacyID(); pharmacyID != nil {
		conditions = append(conditions, "o.pharmacy_id = ?")
		args = append(args, pharmacyID.Bytes())
	}
	if status := query.Status(); status != nil {
		conditions = append(conditions, "o.status = ?")
		args = append(args, int(*status))
	}
	if len(conditions) > 0 {
		sqlQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	sqlQuery += " ORDER BY o.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderSummary(rows *sql.Rows) (OrderSummaryResponse, error) {
	var (
		summary              OrderSummaryResponse
		id, labID            uuid.UUID
		pharmacyID           uuid.UUID
		pharmacyName         sql.NullString
		statusValue          int
		reviewedAt           sql.NullTime
		reviewedBy           sql.NullString
		reviewNote           sql.NullString
		expectedDeliveryDate sql.NullTime
		deliveredAt          sql.NullTime
	)

	err := rows.Scan(
		&id,
		&labID,
		&pharmacyID,
		&pharmacyName,
		&summary.FileName,
		&summary.CreatedAt,
		&statusValue,
		&summary.ReferencesCount,
		&summary.BoxesCount,
		&reviewedAt,
		&reviewedBy,
		&reviewNote,
		&expectedDeliveryDate,
		&deliveredAt,
	)
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderSummaryResponse{}, err
	}
	if summary.LabID, err = kernel.UUIDFromBytes(labID[:]); err != nil {
		return OrderSummaryResponse{}, err
	}
	if summary.PharmacyID, err = kernel.UUIDFromBytes(pharmacyID[:]); err != nil {
		return OrderSummaryResponse{}, err
	}

	summary.PharmacyName = pharmacyName.String
	if !pharmacyName.Valid {
		summary.PharmacyName = services.PlaceholderPharmacyName(summary.PharmacyID)
	}

	summary.Status = order.Status(statusValue).String()
	summary.ReviewedBy = reviewedBy.String
	summary.ReviewNote = reviewNote.String
	if reviewedAt.Valid {
		summary.ReviewedAt = &reviewedAt.Time
	}
	if expectedDeliveryDate.Valid {
		summary.ExpectedDeliveryDate = &expectedDeliveryDate.Time
	}
	if deliveredAt.Valid {
		summary.DeliveredAt = &deliveredAt.Time
	}

	return summary, nil
}
